package openapi

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DocumentConfig configures NewDocument. Only BaseURL is required.
type DocumentConfig struct {
	Title       string
	Description string
	Version     string
	// BaseURL is the server URL; "https://" is prefixed when it does not
	// start with "http".
	BaseURL string
	// Routes are the fragments returned by NewRoute, merged in order.
	Routes []Paths
	// Tags are published as-is in the document tags list.
	Tags []Tag
	// Definitions become components.schemas. Components are emitted only
	// when Definitions is non-nil.
	Definitions     map[string]*Schema
	Responses       map[string]*Response
	SecuritySchemes map[string]*SecurityScheme
	Contact         *Contact
	License         *License
	TermsOfService  string
	// Logger receives debug output about the merge. Nil discards it.
	Logger *slog.Logger
}

func (cfg DocumentConfig) logger() *slog.Logger {
	if cfg.Logger == nil {
		return discardLogger()
	}
	return cfg.Logger
}

// NewDocument merges the route fragments and wraps them with document
// metadata to produce an OpenAPI 3.1.0 document.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-object
func NewDocument(cfg DocumentConfig) (*Document, error) {
	logger := cfg.logger()

	serverURL, err := NormalizeServerURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	paths, err := mergePaths(logger, cfg.Routes)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}

	tags := cfg.Tags
	if tags == nil {
		tags = []Tag{}
	}

	doc := &Document{
		OpenAPI: Version,
		Info: Info{
			Title:          orDefault(cfg.Title, DefaultTitle),
			Description:    orDefault(cfg.Description, DefaultDescription),
			Version:        orDefault(cfg.Version, DefaultVersion),
			Contact:        cfg.Contact,
			License:        cfg.License,
			TermsOfService: cfg.TermsOfService,
		},
		Servers: []Server{{URL: serverURL, Description: DefaultServerDescription}},
		Tags:    tags,
		Paths:   paths,
	}

	if cfg.Definitions != nil {
		doc.Components = &Components{
			Schemas:         cfg.Definitions,
			Responses:       cfg.Responses,
			SecuritySchemes: cfg.SecuritySchemes,
		}
	}

	logger.Debug("openapi document assembled",
		"title", doc.Info.Title,
		"fragments", len(cfg.Routes),
		"paths", len(paths),
	)

	return doc, nil
}

// NormalizeServerURL prefixes "https://" to a base URL without an http(s)
// scheme and converts an internationalized host name to its ASCII form.
func NormalizeServerURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", &DocumentValidationError{ValidationError{Field: "baseUrl", Message: "Base URL cannot be empty"}}
	}

	if !strings.HasPrefix(baseURL, "http") {
		baseURL = "https://" + baseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		// Leave unparsable values as given; the server URL is descriptive.
		return baseURL, nil
	}

	host := u.Hostname()
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil || ascii == host {
		return baseURL, nil
	}

	if port := u.Port(); port != "" {
		u.Host = ascii + ":" + port
	} else {
		u.Host = ascii
	}
	return u.String(), nil
}
