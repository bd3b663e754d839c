package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/campuslife/campus-api/internal/domain"
)

func oneOf(values []string) validation.Rule {
	elements := make([]interface{}, 0, len(values))
	for _, v := range values {
		elements = append(elements, v)
	}

	return validation.In(elements...)
}

type ClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (req *ClubRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 100)),
		validation.Field(&req.Description, validation.Required, validation.Length(10, 2000)),
		validation.Field(&req.Category, validation.Required, oneOf(domain.ClubCategories)),
		validation.Field(&req.ImageURL, is.URL),
	)
}

func (req *ClubRequest) ToDomain() domain.Club {
	return domain.Club{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
}

type ClubListQuery struct {
	Query    string `form:"q"`
	Status   string `form:"status"`
	Category string `form:"category"`
}

func (q *ClubListQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Status, validation.In(domain.ClubStatusAll, domain.ClubStatusValidated, domain.ClubStatusPending)),
		validation.Field(&q.Category, oneOf(domain.ClubCategories)),
	)
}

func (q *ClubListQuery) ToDomain() domain.ClubFilter {
	return domain.ClubFilter{
		Query:    strings.TrimSpace(q.Query),
		Status:   q.Status,
		Category: q.Category,
	}
}
