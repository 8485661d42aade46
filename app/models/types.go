package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Project represents a portfolio project.
type Project struct {
	ID              string    `json:"id" toml:"id" validate:"required"`
	Title           string    `json:"title" toml:"title" validate:"required"`
	Description     string    `json:"description" toml:"description" validate:"required"`
	LongDescription string    `json:"longDescription,omitempty" toml:"long_description"`
	Tags            []string  `json:"tags" toml:"tags" validate:"dive,required"`
	Featured        bool      `json:"featured" toml:"featured"`
	GitHubURL       string    `json:"githubUrl,omitempty" toml:"github_url" validate:"omitempty,url"`
	LiveURL         string    `json:"liveUrl,omitempty" toml:"live_url" validate:"omitempty,url"`
	ImageURL        string    `json:"imageUrl,omitempty" toml:"image_url" validate:"omitempty,uri"`
	CreatedAt       time.Time `json:"createdAt" toml:"created_at"`
}

// BlogPost represents a blog article.
type BlogPost struct {
	Slug        string    `json:"slug" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Content     string    `json:"content"`
	Date        time.Time `json:"date"`
	ReadingTime int       `json:"readingTime" validate:"gt=0"`
	Tags        []string  `json:"tags" validate:"dive,required"`
	Author      string    `json:"author" validate:"required"`
}
