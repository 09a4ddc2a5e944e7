// Package openapi builds OpenAPI v3.1.0 documents declaratively.
//
// Every builder is a pure function over a config struct. Schema,
// parameter and response builders return plain model values; the route
// builder returns a Paths fragment holding one path with one operation,
// and NewDocument deep merges the fragments into a complete Document.
//
// # Schemas
//
// Primitive, array and object schemas are built from config structs. Zero
// values are left out of the output:
//
//	user := openapi.ObjectSchema(openapi.ObjectConfig{
//	    Properties: map[string]*openapi.Schema{
//	        "id":    openapi.CommonIntegerSchemas.ID(),
//	        "email": openapi.StringSchema(openapi.StringConfig{Format: "email"}),
//	    },
//	    Required: []string{"id", "email"},
//	})
//
// Compositions wrap other schemas:
//
//	openapi.OneOfSchema("Cat or dog", openapi.SchemaRef("Cat"), openapi.SchemaRef("Dog"))
//	openapi.NullableSchema(openapi.SchemaRef("Address"), "")
//	openapi.TimestampedSchema(user, "User with timestamps")
//
// Ready-made presets cover common fields:
//
//	openapi.CommonStringSchemas.Email()
//	openapi.CommonIntegerSchemas.Port()
//
// # Parameters
//
// Parameter builders carry the usual defaults for REST listings:
//
//	openapi.IDPathParam(openapi.IDPathConfig{ObjectName: "user", OperationName: "delete"})
//	openapi.PaginationParams(openapi.PaginationConfig{
//	    Style:       openapi.PaginationOffsetLimit,
//	    IncludeSort: true,
//	    Sort:        openapi.SortConfig{AllowedFields: []string{"name", "email"}},
//	})
//
// The limit parameter defaults to 10 within [1, 100]; sort enumerates every
// allowed field followed by its "-"-prefixed descending variant.
//
// # Request Bodies
//
// NewRequestBody takes either inline properties or a component reference,
// never both. The body is published under application/json and
// application/x-www-form-urlencoded with the same schema:
//
//	body, err := openapi.NewRequestBody(openapi.RequestBodyConfig{
//	    Ref:      "#/components/schemas/CreateUser",
//	    Required: true,
//	})
//
// # Responses
//
// NewResponse validates the status key, which must be "default" or a code
// in [100, 600). Shortcut builders cover the common codes, and
// MergeResponses combines maps with later entries replacing earlier ones:
//
//	responses := openapi.MergeResponses(
//	    openapi.SuccessResponse("", openapi.SchemaRef("User")),
//	    openapi.CommonErrorTemplates().All(),
//	)
//
// # Routes
//
// NewRoute validates the path and method and returns a fragment:
//
//	route, err := openapi.NewRoute(openapi.RouteConfig{
//	    Path:      "/users/{id}",
//	    Method:    openapi.MethodGet,
//	    Tag:       "Users",
//	    Responses: responses,
//	})
//
// Paths use {name} placeholders; methods are lower case. RouteGroup applies
// shared tags, parameters, responses and security to a set of routes.
//
// # Documents
//
// NewDocument merges the fragments and adds document metadata:
//
//	doc, err := openapi.NewDocument(openapi.DocumentConfig{
//	    Title:   "Users API",
//	    BaseURL: "api.example.com",
//	    Routes:  []openapi.Paths{listUsers, getUser, createUser},
//	    Definitions: map[string]*openapi.Schema{
//	        "User": user,
//	    },
//	})
//	data, err := doc.JSON()
//
// Fragments for the same path union their methods. When two fragments
// define the same path and method, the operations are deep merged with the
// later fragment winning on conflicting values.
//
// # Errors
//
// Validation failures are typed per builder and all match ErrValidation:
//
//	if errors.Is(err, openapi.ErrValidation) {
//	    var routeErr *openapi.RouteValidationError
//	    if errors.As(err, &routeErr) {
//	        fmt.Println(routeErr.Field, routeErr.Message)
//	    }
//	}
package openapi
