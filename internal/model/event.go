package model

import "time"

// Event 音樂節演出項目
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"notblank"`
	Genre       string    `json:"genre" validate:"notblank"`
	Image       string    `json:"image" validate:"notblank"`
	Description string    `json:"description" validate:"notblank"`
	WebsiteURL  string    `json:"websiteUrl" validate:"notblank"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate reports the first missing or blank required field as ErrInvalidInput.
func (e *Event) Validate() error {
	return validateStruct(e)
}

// UpdateEventParams 部分更新：nil 代表保留原值
type UpdateEventParams struct {
	Name        *string `json:"name" validate:"notblank"`
	Genre       *string `json:"genre" validate:"notblank"`
	Image       *string `json:"image" validate:"notblank"`
	Description *string `json:"description" validate:"notblank"`
	WebsiteURL  *string `json:"websiteUrl" validate:"notblank"`
}

func (p UpdateEventParams) IsEmpty() bool {
	return p.Name == nil && p.Genre == nil && p.Image == nil && p.Description == nil && p.WebsiteURL == nil
}

// Validate rejects supplied fields that would blank out a required value.
func (p UpdateEventParams) Validate() error {
	return validateStruct(&p)
}

// Apply merges the supplied fields into e.
func (p UpdateEventParams) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Genre != nil {
		e.Genre = *p.Genre
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.WebsiteURL != nil {
		e.WebsiteURL = *p.WebsiteURL
	}
}

// Fields returns the supplied fields keyed by their stored name.
func (p UpdateEventParams) Fields() map[string]string {
	fields := make(map[string]string, 5)
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Genre != nil {
		fields["genre"] = *p.Genre
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.WebsiteURL != nil {
		fields["websiteUrl"] = *p.WebsiteURL
	}
	return fields
}
