package tables

import "time"

const DefaultInquirySubject = "General Inquiry"

type Inquiry struct {
	tableName struct{} `bun:"table:inquiries,alias:i"`
	Id        string   `bun:"id,pk" json:"id"`

	Name    string `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Email   string `bun:"email,notnull" json:"email" validate:"required,email"`
	Subject string `bun:"subject,notnull" json:"subject" validate:"omitempty,max=200"`
	Message string `bun:"message,notnull" json:"message" validate:"required,max=5000"`

	// Inquiries never transition; every inquiry stays "new".
	Status    string    `bun:"status,notnull,default:'new'" json:"status"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
