package domain

import "time"

const (
	// CatalogCommissionFee is the base fee, in dollars, for a catalog design.
	CatalogCommissionFee = 75
	// CustomCommissionBaseFee is charged on top of material costs.
	CustomCommissionBaseFee = 95
)

type RequestKind string

const (
	RequestCatalog RequestKind = "catalog"
	RequestCustom  RequestKind = "custom"
)

// Option is one entry of a select box.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var BookingSizes = []Option{
	{Value: "small", Label: "Small (4-6 inches)"},
	{Value: "medium", Label: "Medium (6-8 inches) - Standard"},
	{Value: "large", Label: "Large (8-12 inches)"},
}

var CustomSizes = []Option{
	{Value: "tiny", Label: "Tiny (2-4 inches)"},
	{Value: "small", Label: "Small (4-6 inches)"},
	{Value: "medium", Label: "Medium (6-8 inches)"},
	{Value: "large", Label: "Large (8-12 inches)"},
	{Value: "xl", Label: "Extra Large (12+ inches)"},
	{Value: "custom-size", Label: "Custom Size (specify below)"},
}

var Complexities = []Option{
	{Value: "simple", Label: "Simple (basic shapes, minimal details)"},
	{Value: "moderate", Label: "Moderate (some details, accessories)"},
	{Value: "complex", Label: "Complex (intricate details, multiple parts)"},
	{Value: "very-complex", Label: "Very Complex (highly detailed, challenging)"},
}

var Budgets = []Option{
	{Value: "95-150", Label: "$95-150 (Simple custom)"},
	{Value: "150-250", Label: "$150-250 (Moderate complexity)"},
	{Value: "250-400", Label: "$250-400 (Complex design)"},
	{Value: "400+", Label: "$400+ (Very complex/large)"},
	{Value: "flexible", Label: "Flexible (surprise me!)"},
}

// OptionLabel returns the label for value, or value itself when it is not listed.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// BookingDetails holds the contact, delivery and customization fields of a catalog booking.
type BookingDetails struct {
	Name            string `json:"name" form:"name" validate:"min=2" message:"Name must be at least 2 characters."`
	Email           string `json:"email" form:"email" validate:"email" message:"Please enter a valid email address."`
	Phone           string `json:"phone" form:"phone" validate:"min=10" message:"Please enter a valid phone number."`
	Street          string `json:"street" form:"street" validate:"min=5" message:"Street address is required."`
	City            string `json:"city" form:"city" validate:"min=2" message:"City is required."`
	State           string `json:"state" form:"state" validate:"min=2" message:"State/Province is required."`
	ZipCode         string `json:"zip_code" form:"zip_code" validate:"min=3" message:"ZIP/Postal code is required."`
	Country         string `json:"country" form:"country" validate:"min=2" message:"Country is required."`
	Colors          string `json:"colors" form:"colors" validate:"min=3" message:"Please specify your preferred colors."`
	Size            string `json:"size" form:"size" validate:"min=1" message:"Please select a size."`
	SpecialRequests string `json:"special_requests" form:"special_requests"`
}

// Attachment describes a reference image the customer picked. Content is never kept.
type Attachment struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// CommissionDetails holds the fields of an open-ended custom commission request.
type CommissionDetails struct {
	Name               string       `json:"name" form:"name" validate:"min=2" message:"Name must be at least 2 characters."`
	Email              string       `json:"email" form:"email" validate:"email" message:"Please enter a valid email address."`
	Phone              string       `json:"phone" form:"phone" validate:"omitempty,min=10" message:"Please enter a valid phone number."`
	ProjectDescription string       `json:"project_description" form:"project_description" validate:"min=10" message:"Please describe your project in at least 10 characters."`
	Inspiration        string       `json:"inspiration" form:"inspiration"`
	Colors             string       `json:"colors" form:"colors"`
	Size               string       `json:"size" form:"size" validate:"omitempty,oneof=tiny small medium large xl custom-size" message:"Please select a size from the list."`
	Complexity         string       `json:"complexity" form:"complexity" validate:"omitempty,oneof=simple moderate complex very-complex" message:"Please select a complexity level from the list."`
	Deadline           string       `json:"deadline" form:"deadline"`
	Budget             string       `json:"budget" form:"budget" validate:"omitempty,oneof=95-150 150-250 250-400 400+ flexible" message:"Please select a budget range from the list."`
	SpecialRequests    string       `json:"special_requests" form:"special_requests"`
	ReferenceImages    []Attachment `json:"reference_images" form:"-"`
}

// Acknowledgement is what the customer sees after submitting a request.
type Acknowledgement struct {
	Reference   string      `json:"reference"`
	Kind        RequestKind `json:"kind"`
	Message     string      `json:"message"`
	Email       string      `json:"email"`
	SlotWeek    string      `json:"slot_week"`
	ItemName    string      `json:"item_name,omitempty"`
	Fee         int         `json:"fee"`
	SubmittedAt time.Time   `json:"submitted_at"`
}
