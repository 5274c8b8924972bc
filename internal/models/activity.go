package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityCollection is the document-store collection holding activities.
const ActivityCollection = "activity"

// Activity is a single dated activity entry in a monthly report.
// Dates are stored at midnight UTC; the store has no date-only type.
type Activity struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date            time.Time          `bson:"date" json:"date"`
	Name            string             `bson:"name" json:"name"`
	Category        string             `bson:"category" json:"category"`
	Duration        float64            `bson:"duration" json:"duration"`
	Result          *string            `bson:"result,omitempty" json:"result,omitempty"`
	Notes           *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Income          float64            `bson:"income" json:"income"`
	Expense         float64            `bson:"expense" json:"expense"`
	FinanceCategory *string            `bson:"finance_category,omitempty" json:"finance_category,omitempty"`
	Attachments     []Attachment       `bson:"attachments" json:"attachments"`
	UpdatedAt       *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Attachment is an uploaded proof file embedded in an activity.
// Attachments are not independently addressable; list order is preserved.
type Attachment struct {
	Filename    string  `bson:"filename" json:"filename"`
	URL         string  `bson:"url" json:"url"`
	ContentType *string `bson:"content_type,omitempty" json:"content_type,omitempty"`
	Size        *int64  `bson:"size,omitempty" json:"size,omitempty"`
}
