package models

// StepKey is the human readable step identifier kept in the ?step= query parameter
type StepKey string

const (
	StepClassification StepKey = "classification"
	StepDescription    StepKey = "description"
	StepAvailability   StepKey = "availability"
	StepMedia          StepKey = "media"
	StepPricing        StepKey = "pricing"
	StepPricingSummary StepKey = "pricing_summary"
	StepPublish        StepKey = "publish"
)

// FirstStep is the index every fresh wizard starts on
const FirstStep = 1

// WizardStep is one screen of the product creation wizard
type WizardStep struct {
	Index     int     `json:"index"`
	Key       StepKey `json:"key"`
	Title     string  `json:"title"`
	Component string  `json:"component"`
}

// GetWizardSteps returns the ordered step table for a product kind. Events get
// a pricing summary screen between pricing and publish.
func GetWizardSteps(kind ProductKind) []WizardStep {
	steps := []WizardStep{
		{Key: StepClassification, Title: "Classification", Component: "ClassificationForm"},
		{Key: StepDescription, Title: "Description", Component: "DescriptionForm"},
		{Key: StepAvailability, Title: "Availability", Component: "AvailabilityForm"},
		{Key: StepMedia, Title: "Photos & Videos", Component: "MediaForm"},
		{Key: StepPricing, Title: "Pricing", Component: "PricingForm"},
	}

	if kind == KindEvent {
		steps = append(steps, WizardStep{Key: StepPricingSummary, Title: "Pricing Summary", Component: "PricingSummary"})
	}

	steps = append(steps, WizardStep{Key: StepPublish, Title: "Publish", Component: "PublishProduct"})

	for i := range steps {
		steps[i].Index = i + 1
	}
	return steps
}
