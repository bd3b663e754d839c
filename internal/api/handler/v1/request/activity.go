package request

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/campuslife/campus-api/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ActivityRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Date            string `json:"date" example:"2030-03-14"`
	Time            string `json:"time" example:"18:30"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
	ImageURL        string `json:"image_url"`
}

func (req *ActivityRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 100)),
		validation.Field(&req.Description, validation.Required, validation.Length(10, 2000)),
		validation.Field(&req.Category, validation.Required, oneOf(domain.ActivityCategories)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.Time, validation.Required, validation.Date(timeLayout)),
		validation.Field(&req.Location, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.MaxParticipants, validation.Required, validation.Min(1)),
		validation.Field(&req.ImageURL, is.URL),
	)
}

// ToDomain builds the activity; date and time are read as wall clock time
// in loc. Call it only after Validate succeeded.
func (req *ActivityRequest) ToDomain(loc *time.Location) domain.Activity {
	startsAt, _ := time.ParseInLocation(dateLayout+" "+timeLayout, req.Date+" "+req.Time, loc)

	return domain.Activity{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		StartsAt:        startsAt,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		ImageURL:        req.ImageURL,
	}
}

type ActivityListQuery struct {
	Query    string `form:"q"`
	Status   string `form:"status"`
	Category string `form:"category"`
	ClubID   uint   `form:"club_id"`
}

func (q *ActivityListQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Status, validation.In(domain.ActivityStatusAll, domain.ActivityStatusUpcoming, domain.ActivityStatusPast)),
		validation.Field(&q.Category, oneOf(domain.ActivityCategories)),
	)
}

func (q *ActivityListQuery) ToDomain() domain.ActivityFilter {
	return domain.ActivityFilter{
		Query:    strings.TrimSpace(q.Query),
		Status:   q.Status,
		Category: q.Category,
		ClubID:   q.ClubID,
	}
}
