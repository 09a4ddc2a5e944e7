package openapi

// Media types every generated body and response content is published under.
const (
	MediaTypeJSON = "application/json"
	MediaTypeForm = "application/x-www-form-urlencoded"
)

// defaultMediaTypes lists the content types used when a builder is not
// given explicit ones. Order is fixed so output stays deterministic.
var defaultMediaTypes = []string{MediaTypeJSON, MediaTypeForm}

// Document defaults.
const (
	DefaultTitle             = "API Documentation"
	DefaultDescription       = "API documentation generated with api-opener"
	DefaultVersion           = "1.0.0"
	DefaultServerDescription = "API Server"
	DefaultTag               = "Rest"
)

// parameterDefaults holds every default applied by the parameter builders.
var parameterDefaults = struct {
	idDescription     string
	pageDescription   string
	pageMinimum       float64
	limitDescription  string
	limitDefault      int
	limitMinimum      float64
	limitMaximum      float64
	offsetDescription string
	offsetDefault     int
	offsetMinimum     float64
	sortDescription   string
	sortDescSuffix    string
}{
	idDescription:     "ID of the resource",
	pageDescription:   "Num of page",
	pageMinimum:       1,
	limitDescription:  "Maximum number of results to return",
	limitDefault:      10,
	limitMinimum:      1,
	limitMaximum:      100,
	offsetDescription: "Number of results to skip",
	offsetDefault:     0,
	offsetMinimum:     0,
	sortDescription:   "Field to sort by",
	sortDescSuffix:    ` (use "-" prefix for descending order)`,
}

// responseDescriptions holds the default description of each fixed-status
// response builder.
var responseDescriptions = map[int]string{
	200: "Success",
	201: "Created",
	204: "No Content",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	409: "Conflict",
	422: "Unprocessable Entity",
	429: "Too Many Requests",
	500: "Internal Server Error",
	503: "Service Unavailable",
}

func ptr[T any](v T) *T {
	return &v
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
