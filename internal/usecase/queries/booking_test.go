//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore, *queriesmock.MockRoomReadStore) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		return queries.NewBookingQueries(bookings, rooms), bookings, rooms
	}

	t.Run("success: no filter attaches rooms looked up by id", func(t *testing.T) {
		q, bookings, rooms := setup(t)
		r1 := builder.NewRoomBuilder().BuildView()
		r2 := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.RoomNumber = 102 }).BuildView()
		b1 := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = r1.ID }).BuildView(uuid.New())
		b2 := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = r2.ID }).BuildView(uuid.New())
		b3 := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = r1.ID }).BuildView(uuid.New())

		bookings.EXPECT().List(gomock.Any(), queries.BookingFilter{}).Return([]*queries.BookingView{&b1, &b2, &b3}, nil)
		rooms.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{r1.ID, r2.ID}).Return([]*queries.RoomView{r1, r2}, nil)

		items, err := q.List(ctx, queries.ListBookingsInput{})

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, r1, items[0].Room)
		assert.Equal(t, r2, items[1].Room)
		assert.Equal(t, b3.ID, items[2].ID)
	})

	t.Run("success: empty result skips room lookup", func(t *testing.T) {
		q, bookings, _ := setup(t)
		bookings.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		items, err := q.List(ctx, queries.ListBookingsInput{})

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("success: room filter narrows bookings to matching rooms", func(t *testing.T) {
		q, bookings, rooms := setup(t)
		number := 101
		from := time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC)
		r1 := builder.NewRoomBuilder().BuildView()
		b1 := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = r1.ID }).BuildView(uuid.New())

		rooms.EXPECT().List(gomock.Any(), queries.RoomFilter{RoomNumber: &number}).Return([]*queries.RoomView{r1}, nil)
		bookings.EXPECT().List(gomock.Any(), queries.BookingFilter{RoomIDs: []uuid.UUID{r1.ID}, StartFrom: &from}).
			Return([]*queries.BookingView{&b1}, nil)

		items, err := q.List(ctx, queries.ListBookingsInput{RoomNumber: &number, StartFrom: &from})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, r1, items[0].Room)
	})

	t.Run("success: room filter without match returns empty list", func(t *testing.T) {
		q, _, rooms := setup(t)
		roomType := "Penthouse"
		rooms.EXPECT().List(gomock.Any(), queries.RoomFilter{Type: &roomType}).Return([]*queries.RoomView{}, nil)

		items, err := q.List(ctx, queries.ListBookingsInput{RoomType: &roomType})

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: unavailable store", func(t *testing.T) {
		q, bookings, _ := setup(t)
		bookings.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("list", context.DeadlineExceeded))

		_, err := q.List(ctx, queries.ListBookingsInput{})

		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrReadUnavailable))
		assert.Equal(t, errs.ErrUnavailable, errs.Kind(err))
	})
}
