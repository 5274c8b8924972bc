package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/laporku/monthly-report-api/internal/docstore"
	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/models"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/repository"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate indicates a date field that does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ActivityService implements activity CRUD and filtered listing.
type ActivityService interface {
	Create(ctx context.Context, req dto.CreateActivityRequest) (dto.CreateActivityResponse, error)
	List(ctx context.Context, params query.ActivityFilterParams) ([]map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, req dto.UpdateActivityRequest) (dto.UpdateActivityResponse, error)
	Delete(ctx context.Context, id string) (dto.DeleteActivityResponse, error)
}

type activityService struct {
	repo     repository.ActivityRepository
	filters  *query.FilterBuilder
	validate *validator.Validate
	logger   zerolog.Logger
	now      func() time.Time
}

// NewActivityService constructs the activity service.
func NewActivityService(repo repository.ActivityRepository, filters *query.FilterBuilder, validate *validator.Validate, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:     repo,
		filters:  filters,
		validate: validate,
		logger:   logger.With().Str("component", "activity_service").Logger(),
		now:      time.Now,
	}
}

func (s *activityService) Create(ctx context.Context, req dto.CreateActivityRequest) (dto.CreateActivityResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.CreateActivityResponse{}, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return dto.CreateActivityResponse{}, err
	}

	activity := models.Activity{
		Date:            date,
		Name:            req.Name,
		Category:        req.Category,
		Duration:        *req.Duration,
		Result:          req.Result,
		Notes:           req.Notes,
		FinanceCategory: req.FinanceCategory,
		Attachments:     toAttachments(req.Attachments),
	}
	if req.Income != nil {
		activity.Income = *req.Income
	}
	if req.Expense != nil {
		activity.Expense = *req.Expense
	}

	id, err := s.repo.Create(ctx, &activity)
	if err != nil {
		return dto.CreateActivityResponse{}, err
	}

	s.logger.Info().Str("id", docstore.EncodeID(id)).Str("category", activity.Category).Msg("activity created")
	return dto.CreateActivityResponse{ID: docstore.EncodeID(id)}, nil
}

func (s *activityService) List(ctx context.Context, params query.ActivityFilterParams) ([]map[string]any, error) {
	filter, err := s.filters.Build(params)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, docstore.Serialize(doc))
	}
	return out, nil
}

func (s *activityService) Get(ctx context.Context, id string) (map[string]any, error) {
	oid, err := docstore.DecodeID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return docstore.Serialize(doc), nil
}

func (s *activityService) Update(ctx context.Context, id string, req dto.UpdateActivityRequest) (dto.UpdateActivityResponse, error) {
	oid, err := docstore.DecodeID(id)
	if err != nil {
		return dto.UpdateActivityResponse{}, err
	}

	if err := s.validate.Struct(req); err != nil {
		return dto.UpdateActivityResponse{}, err
	}

	fields, err := updateFields(req)
	if err != nil {
		return dto.UpdateActivityResponse{}, err
	}
	if len(fields) == 0 {
		// No recognized fields is a no-op success, not an error.
		return dto.UpdateActivityResponse{Updated: false}, nil
	}
	fields["updated_at"] = s.now().UTC()

	modified, err := s.repo.Update(ctx, oid, fields)
	if err != nil {
		return dto.UpdateActivityResponse{}, err
	}
	return dto.UpdateActivityResponse{Updated: modified}, nil
}

func (s *activityService) Delete(ctx context.Context, id string) (dto.DeleteActivityResponse, error) {
	oid, err := docstore.DecodeID(id)
	if err != nil {
		return dto.DeleteActivityResponse{}, err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return dto.DeleteActivityResponse{}, err
	}
	return dto.DeleteActivityResponse{Deleted: deleted}, nil
}

func updateFields(req dto.UpdateActivityRequest) (bson.M, error) {
	fields := bson.M{}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		fields["date"] = date
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Result != nil {
		fields["result"] = *req.Result
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Income != nil {
		fields["income"] = *req.Income
	}
	if req.Expense != nil {
		fields["expense"] = *req.Expense
	}
	if req.FinanceCategory != nil {
		fields["finance_category"] = *req.FinanceCategory
	}
	return fields, nil
}

func toAttachments(payloads []dto.AttachmentPayload) []models.Attachment {
	attachments := make([]models.Attachment, 0, len(payloads))
	for _, payload := range payloads {
		attachments = append(attachments, models.Attachment{
			Filename:    payload.Filename,
			URL:         payload.URL,
			ContentType: payload.ContentType,
			Size:        payload.Size,
		})
	}
	return attachments
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, raw)
	}
	return date, nil
}
