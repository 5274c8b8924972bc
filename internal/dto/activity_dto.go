package dto

// AttachmentPayload carries attachment metadata on create/update requests.
type AttachmentPayload struct {
	Filename    string  `json:"filename" validate:"required"`
	URL         string  `json:"url" validate:"required"`
	ContentType *string `json:"content_type,omitempty"`
	Size        *int64  `json:"size,omitempty" validate:"omitempty,gte=0"`
}

// CreateActivityRequest is the payload for creating a new activity.
type CreateActivityRequest struct {
	Date            string              `json:"date" validate:"required,datetime=2006-01-02"`
	Name            string              `json:"name" validate:"required"`
	Category        string              `json:"category" validate:"required"`
	Duration        *float64            `json:"duration" validate:"required,gte=0"`
	Result          *string             `json:"result,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
	Income          *float64            `json:"income,omitempty" validate:"omitempty,gte=0"`
	Expense         *float64            `json:"expense,omitempty" validate:"omitempty,gte=0"`
	FinanceCategory *string             `json:"finance_category,omitempty"`
	Attachments     []AttachmentPayload `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// UpdateActivityRequest is a partial update; only supplied fields change.
type UpdateActivityRequest struct {
	Date            *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Duration        *float64 `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Result          *string  `json:"result,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Income          *float64 `json:"income,omitempty" validate:"omitempty,gte=0"`
	Expense         *float64 `json:"expense,omitempty" validate:"omitempty,gte=0"`
	FinanceCategory *string  `json:"finance_category,omitempty"`
}

// CreateActivityResponse returns the identifier assigned by the store.
type CreateActivityResponse struct {
	ID string `json:"id"`
}

// UpdateActivityResponse reports whether a record was modified.
type UpdateActivityResponse struct {
	Updated bool `json:"updated"`
}

// DeleteActivityResponse reports whether a record was deleted.
type DeleteActivityResponse struct {
	Deleted bool `json:"deleted"`
}
