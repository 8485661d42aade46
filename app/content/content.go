// Package content loads the site's sample data: projects from a TOML file and
// blog posts from Markdown files with YAML front matter.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"

	"folio/app/models"
)

const (
	projectsFile = "projects.toml"
	postsDir     = "posts"
	dateLayout   = "2006-01-02"
)

//go:embed data
var embedded embed.FS

// Embedded returns the content compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic("content: embedded data missing: " + err.Error())
	}
	return sub
}

// Dataset is the full set of site content in collection order.
type Dataset struct {
	Projects []models.Project
	Posts    []models.BlogPost
}

type projectFile struct {
	Projects []models.Project `toml:"project"`
}

type frontMatter struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	ReadingTime int      `yaml:"reading_time"`
	Tags        []string `yaml:"tags"`
	Author      string   `yaml:"author"`
}

// Load reads projects.toml and posts/*.md from fsys. Posts are ordered by
// file name. Every record is validated.
func Load(fsys fs.FS) (Dataset, error) {
	projects, err := loadProjects(fsys)
	if err != nil {
		return Dataset{}, err
	}
	posts, err := loadPosts(fsys)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Projects: projects, Posts: posts}, nil
}

func loadProjects(fsys fs.FS) ([]models.Project, error) {
	data, err := fs.ReadFile(fsys, projectsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", projectsFile, err)
	}

	var file projectFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", projectsFile, err)
	}

	for i := range file.Projects {
		if err := file.Projects[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: project %d: %w", projectsFile, i, err)
		}
	}
	if file.Projects == nil {
		file.Projects = []models.Project{}
	}
	return file.Projects, nil
}

func loadPosts(fsys fs.FS) ([]models.BlogPost, error) {
	entries, err := fs.ReadDir(fsys, postsDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", postsDir, err)
	}

	posts := make([]models.BlogPost, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		name := path.Join(postsDir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		post, err := parsePost(entry.Name(), data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func parsePost(fileName string, data []byte) (models.BlogPost, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("parse front matter: %w", err)
	}

	post := models.BlogPost{
		Slug:        fm.Slug,
		Title:       fm.Title,
		Description: fm.Description,
		Content:     strings.TrimSpace(string(body)),
		ReadingTime: fm.ReadingTime,
		Tags:        fm.Tags,
		Author:      fm.Author,
	}
	if post.Slug == "" {
		post.Slug = slugFromFileName(fileName)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if fm.Date != "" {
		post.Date, err = time.Parse(dateLayout, fm.Date)
		if err != nil {
			return models.BlogPost{}, fmt.Errorf("parse date: %w", err)
		}
	}

	if err := post.Validate(); err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// slugFromFileName turns "03-hello-world.md" into "hello-world".
func slugFromFileName(name string) string {
	name = strings.TrimSuffix(name, path.Ext(name))
	prefix, rest, ok := strings.Cut(name, "-")
	if ok && prefix != "" && strings.Trim(prefix, "0123456789") == "" {
		return rest
	}
	return name
}
