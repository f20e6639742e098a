package commands

import (
	"context"
	"time"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomNumberTaken = errs.Sentinel("room_number already exists", errs.ErrInvalidInput)

type CreateRoomInput struct {
	RoomNumber   int
	Type         string
	PricePerHour int64
}

type RoomResult struct {
	ID           uuid.UUID
	RoomNumber   int
	Type         string
	PricePerHour int64
	CreatedAt    time.Time
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (*RoomResult, error)
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomUseCase(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (*RoomResult, error) {
	r, err := room.NewRoom(in.RoomNumber, room.Type(in.Type), in.PricePerHour)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var saved *room.Room
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		saved, derr = tx.Rooms().Create(ctx, tx.DB(), r)
		if derr == nil {
			return nil
		}
		switch {
		case infra.IsKind(derr, infra.KindDuplicateKey):
			return errs.Mark(derr, ErrRoomNumberTaken)
		case infra.IsKind(derr, infra.KindUnavailable):
			return errs.Mark(derr, ErrStoreUnavailable)
		}
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &RoomResult{
		ID:           saved.ID(),
		RoomNumber:   saved.Number(),
		Type:         saved.Type().String(),
		PricePerHour: saved.PricePerHour(),
		CreatedAt:    saved.CreatedAt(),
	}, nil
}
