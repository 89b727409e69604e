package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jinzhu/copier"

	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/repositories"
)

// DraftService persists each wizard step on the booking API and keeps the
// workspace draft in sync with the server's view of the product
type DraftService struct {
	products     ProductRepository
	locations    LocationRepository
	availability AvailabilityRepository
	media        MediaRepository
	pricing      PricingRepository
	mediaPrep    *MediaService
	sequencer    *StepSequencer
	calculator   *PricingCalculator
}

// NewDraftService creates a new draft service
func NewDraftService(
	products ProductRepository,
	locations LocationRepository,
	availability AvailabilityRepository,
	media MediaRepository,
	pricing PricingRepository,
	mediaPrep *MediaService,
	sequencer *StepSequencer,
	calculator *PricingCalculator,
) *DraftService {
	return &DraftService{
		products:     products,
		locations:    locations,
		availability: availability,
		media:        media,
		pricing:      pricing,
		mediaPrep:    mediaPrep,
		sequencer:    sequencer,
		calculator:   calculator,
	}
}

// PricingResult is returned after a pricing tier is saved
type PricingResult struct {
	Entry     *models.PricingEntry `json:"entry"`
	Breakdown PricingBreakdown     `json:"breakdown"`
	Draft     *models.Product      `json:"draft"`
}

// SubmitClassification creates the product on first submit and updates it on
// later ones, then advances the wizard
func (s *DraftService) SubmitClassification(ctx context.Context, ws *models.Workspace, form *models.ClassificationForm) (*models.Product, error) {
	if !ws.Draft.HasID() {
		product, err := s.products.Create(ctx, form)
		if err != nil {
			return nil, err
		}
		ws.Draft = &models.Product{}
		if err := s.project(ws.Draft, product); err != nil {
			return nil, err
		}
	} else {
		update := &repositories.ProductUpdate{
			Category:    form.Category,
			Subcategory: form.Subcategory,
			Kind:        form.Kind,
			Name:        ws.Draft.Name,
			Description: ws.Draft.Description,
		}
		if _, err := s.products.Update(ctx, ws.Draft.IDValue(), update); err != nil {
			return nil, err
		}
	}

	if err := s.Refresh(ctx, ws); err != nil {
		return nil, err
	}

	s.sequencer.SetKind(ws, form.Kind)
	s.sequencer.Next(ws)
	return ws.Draft, nil
}

// SubmitDescription saves the name, description and venue
func (s *DraftService) SubmitDescription(ctx context.Context, ws *models.Workspace, form *models.DescriptionForm) (*models.Product, error) {
	if !ws.Draft.HasID() {
		return nil, models.ErrDraftNotFound
	}

	id := ws.Draft.IDValue()
	update := &repositories.ProductUpdate{
		Category:    ws.Draft.Category,
		Subcategory: ws.Draft.Subcategory,
		Kind:        ws.Kind,
		Name:        form.Name,
		Description: form.Description,
	}
	if _, err := s.products.Update(ctx, id, update); err != nil {
		return nil, err
	}

	location := &models.Location{
		Product:   id,
		Address:   form.Address,
		City:      form.City,
		Country:   form.Country,
		Latitude:  form.Latitude,
		Longitude: form.Longitude,
	}

	var (
		saved *models.Location
		err   error
	)
	if ws.Draft.Location != nil && ws.Draft.Location.ID != nil {
		saved, err = s.locations.Update(ctx, *ws.Draft.Location.ID, location)
	} else {
		saved, err = s.locations.Create(ctx, location)
	}
	if err != nil {
		return nil, err
	}
	ws.Draft.Location = saved

	if err := s.Refresh(ctx, ws); err != nil {
		return nil, err
	}

	s.sequencer.Next(ws)
	return ws.Draft, nil
}

// SubmitAvailability saves open days, closed dates and times
func (s *DraftService) SubmitAvailability(ctx context.Context, ws *models.Workspace, form *models.AvailabilityForm) (*models.Product, error) {
	if !ws.Draft.HasID() {
		return nil, models.ErrDraftNotFound
	}

	availability := &models.Availability{
		Product:     ws.Draft.IDValue(),
		Start:       form.Start,
		End:         form.End,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		Duration:    form.Duration,
		OpenDays:    form.OpenDays,
		ClosedDates: form.ClosedDates,
	}

	var (
		saved *models.Availability
		err   error
	)
	if ws.Draft.Availability != nil && ws.Draft.Availability.ID != nil {
		saved, err = s.availability.Patch(ctx, *ws.Draft.Availability.ID, availability)
	} else {
		saved, err = s.availability.Create(ctx, availability)
	}
	if err != nil {
		return nil, err
	}
	ws.Draft.Availability = saved

	if err := s.Refresh(ctx, ws); err != nil {
		return nil, err
	}

	s.sequencer.Next(ws)
	return ws.Draft, nil
}

// UploadMedia adds a photo or video to the draft. The wizard stays on the
// media step so several files can be added.
func (s *DraftService) UploadMedia(ctx context.Context, ws *models.Workspace, mediaType models.MediaType, filename, contentType string, content io.Reader) (*models.Media, error) {
	if !ws.Draft.HasID() {
		return nil, models.ErrDraftNotFound
	}

	upload, err := s.mediaPrep.Prepare(ws.Draft.IDValue(), mediaType, filename, contentType, content)
	if err != nil {
		return nil, err
	}

	media, err := s.media.Upload(ctx, upload)
	if err != nil {
		return nil, err
	}
	ws.Draft.Media = append(ws.Draft.Media, *media)

	if err := s.Refresh(ctx, ws); err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteMedia removes a photo or video from the draft
func (s *DraftService) DeleteMedia(ctx context.Context, ws *models.Workspace, mediaID int) error {
	if !ws.Draft.HasID() {
		return models.ErrDraftNotFound
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		return err
	}

	kept := ws.Draft.Media[:0]
	for _, m := range ws.Draft.Media {
		if m.ID != mediaID {
			kept = append(kept, m)
		}
	}
	ws.Draft.Media = kept

	return s.Refresh(ctx, ws)
}

// SubmitPricing upserts one pricing tier. The stored cost includes the service
// fee. Several tiers can be added, so the wizard does not advance.
func (s *DraftService) SubmitPricing(ctx context.Context, ws *models.Workspace, form *models.PricingForm) (*PricingResult, error) {
	if !ws.Draft.HasID() {
		return nil, models.ErrDraftNotFound
	}

	entry, breakdown := s.calculator.EntryFromForm(ws.Draft.IDValue(), form)

	var (
		saved *models.PricingEntry
		err   error
	)
	if entry.ID != nil {
		saved, err = s.pricing.Patch(ctx, *entry.ID, entry)
	} else {
		saved, err = s.pricing.Create(ctx, entry)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx, ws); err != nil {
		return nil, err
	}

	return &PricingResult{Entry: saved, Breakdown: breakdown, Draft: ws.Draft}, nil
}

// Publish activates the product and closes the wizard
func (s *DraftService) Publish(ctx context.Context, ws *models.Workspace) (*models.Product, error) {
	if !ws.Draft.HasID() {
		return nil, models.ErrDraftNotFound
	}

	product, err := s.products.Patch(ctx, ws.Draft.IDValue(), &repositories.ProductUpdate{Status: models.ProductActive})
	if err != nil {
		return nil, err
	}

	log.Printf("product %d published", ws.Draft.IDValue())
	s.sequencer.Exit(ws)
	return product, nil
}

// SetStatus pauses or activates a product outside of the wizard
func (s *DraftService) SetStatus(ctx context.Context, productID int, status models.ProductStatus) (*models.Product, error) {
	if status != models.ProductActive && status != models.ProductPaused {
		return nil, fmt.Errorf("%w: status %s", models.ErrInvalidInput, status)
	}
	return s.products.Patch(ctx, productID, &repositories.ProductUpdate{Status: status})
}

// DeleteProduct deletes a product. Deleting the product being drafted also
// closes the wizard.
func (s *DraftService) DeleteProduct(ctx context.Context, ws *models.Workspace, productID int) error {
	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}
	if ws.Draft.HasID() && ws.Draft.IDValue() == productID {
		s.sequencer.Exit(ws)
	}
	return nil
}

// Refresh re-fetches the draft from the booking API
func (s *DraftService) Refresh(ctx context.Context, ws *models.Workspace) error {
	if !ws.Draft.HasID() {
		return models.ErrDraftNotFound
	}

	product, err := s.products.GetByID(ctx, ws.Draft.IDValue())
	if err != nil {
		return err
	}
	if err := s.project(ws.Draft, product); err != nil {
		return err
	}
	ws.Touch()
	return nil
}

// project copies the server product onto the draft. Nested resources the
// product endpoint did not embed keep their last known value.
func (s *DraftService) project(draft, product *models.Product) error {
	location := draft.Location
	availability := draft.Availability

	if err := copier.CopyWithOption(draft, product, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("failed to project product onto draft: %w", err)
	}

	if draft.Location == nil {
		draft.Location = location
	}
	if draft.Availability == nil {
		draft.Availability = availability
	}
	return nil
}
