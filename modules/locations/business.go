package locations

import "github.com/dmitrymomot/ocpi/pkg/validator"

// BusinessDetails names an operator, suboperator or owner.
type BusinessDetails struct {
	Name    string  `json:"name"`
	Website *string `json:"website,omitempty"`
	Logo    *Image  `json:"logo,omitempty"`
}

func (b BusinessDetails) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.MinLen("name", b.Name, 1),
			validator.MaxLen("name", b.Name, 100),
			validator.When(b.Website != nil, validator.ValidURL("website", validator.Deref(b.Website))),
		),
		validator.NestedPtr("logo", b.Logo),
	)
}

// Image references a picture hosted by the sender.
type Image struct {
	URL       string        `json:"url"`
	Thumbnail *string       `json:"thumbnail,omitempty"`
	Category  ImageCategory `json:"category"`
	Type      string        `json:"type"`
	Width     *int          `json:"width,omitempty"`
	Height    *int          `json:"height,omitempty"`
}

func (i Image) Validate() error {
	return validator.Apply(
		validator.ValidURL("url", i.URL),
		validator.When(i.Thumbnail != nil, validator.ValidURL("thumbnail", validator.Deref(i.Thumbnail))),
		validator.OneOf("category", i.Category),
		validator.Required("type", i.Type),
		validator.CiString("type", i.Type),
		validator.MaxLen("type", i.Type, 4),
		validator.When(i.Width != nil, validator.Between("width", validator.Deref(i.Width), 1, 99999)),
		validator.When(i.Height != nil, validator.Between("height", validator.Deref(i.Height), 1, 99999)),
	)
}
