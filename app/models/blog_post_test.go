package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlogPostValidation(t *testing.T) {
	valid := func() *BlogPost {
		return &BlogPost{
			Slug:        "hello-world",
			Title:       "Hello World",
			Description: "First post",
			Content:     "# Hello",
			Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			ReadingTime: 5,
			Tags:        []string{"Go"},
			Author:      "Jane",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*BlogPost)
		wantErr bool
	}{
		{name: "valid post", mutate: func(*BlogPost) {}, wantErr: false},
		{name: "missing slug", mutate: func(b *BlogPost) { b.Slug = "" }, wantErr: true},
		{name: "zero reading time", mutate: func(b *BlogPost) { b.ReadingTime = 0 }, wantErr: true},
		{name: "negative reading time", mutate: func(b *BlogPost) { b.ReadingTime = -3 }, wantErr: true},
		{name: "missing author", mutate: func(b *BlogPost) { b.Author = "" }, wantErr: true},
		{name: "zero date", mutate: func(b *BlogPost) { b.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := valid()
			tt.mutate(post)
			err := post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlogPostClone(t *testing.T) {
	b := BlogPost{Slug: "a", Tags: []string{"Go"}}
	c := b.Clone()
	c.Tags[0] = "Rust"

	assert.Equal(t, "Go", b.Tags[0])
}
