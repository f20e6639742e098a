package response

type MailResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
