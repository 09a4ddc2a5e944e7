package openapi

// Preset returns a ready-made schema. Each call returns a fresh value, so
// callers may modify the result.
type Preset func() *Schema

// CommonStringSchemas holds string presets.
var CommonStringSchemas = struct {
	Email, Password, UUID, URL, Slug, PhoneNumber, Date, DateTime, Username, Color Preset
}{
	Email: func() *Schema {
		return StringSchema(StringConfig{Format: "email", Description: "Email address", Example: "user@example.com"})
	},
	Password: func() *Schema {
		return StringSchema(StringConfig{Format: "password", MinLength: 8, MaxLength: 128, Description: "Password with minimum 8 characters"})
	},
	UUID: func() *Schema {
		return StringSchema(StringConfig{Format: "uuid", Description: "UUID identifier", Example: "123e4567-e89b-12d3-a456-426614174000"})
	},
	URL: func() *Schema {
		return StringSchema(StringConfig{Pattern: "^https?://.*", Description: "URL string", Example: "https://example.com"})
	},
	Slug: func() *Schema {
		return StringSchema(StringConfig{Pattern: "^[a-z0-9]+(?:-[a-z0-9]+)*$", Description: "URL-friendly slug", Example: "my-blog-post"})
	},
	PhoneNumber: func() *Schema {
		return StringSchema(StringConfig{Pattern: `^\+?[1-9]\d{1,14}$`, Description: "Phone number", Example: "+1234567890"})
	},
	Date: func() *Schema {
		return StringSchema(StringConfig{Format: "date", Description: "Date in YYYY-MM-DD format", Example: "2025-07-14"})
	},
	DateTime: func() *Schema {
		return StringSchema(StringConfig{Format: "date-time", Description: "Date and time in ISO 8601 format", Example: exampleTimestamp})
	},
	Username: func() *Schema {
		return StringSchema(StringConfig{
			MinLength: 3, MaxLength: 30, Pattern: "^[a-zA-Z0-9_]+$",
			Description: "Username with alphanumeric characters and underscores", Example: "user_123",
		})
	},
	Color: func() *Schema {
		return StringSchema(StringConfig{Pattern: "^#[0-9A-Fa-f]{6}$", Description: "Hex color code", Example: "#FF5733"})
	},
}

// CommonNumberSchemas holds number presets.
var CommonNumberSchemas = struct {
	Price, Percentage, Rating, Latitude, Longitude, Weight, Temperature Preset
}{
	Price: func() *Schema {
		return NumberSchema(NumberConfig{Minimum: ptr(0.0), MultipleOf: 0.01, Description: "Price in currency units", Example: ptr(29.99)})
	},
	Percentage: func() *Schema {
		return NumberSchema(NumberConfig{Minimum: ptr(0.0), Maximum: ptr(100.0), Description: "Percentage value", Example: ptr(75.5)})
	},
	Rating: func() *Schema {
		return NumberSchema(NumberConfig{Minimum: ptr(1.0), Maximum: ptr(5.0), Description: "Rating from 1 to 5", Example: ptr(4.2)})
	},
	Latitude: func() *Schema {
		return NumberSchema(NumberConfig{Minimum: ptr(-90.0), Maximum: ptr(90.0), Description: "Latitude coordinate", Example: ptr(40.7128)})
	},
	Longitude: func() *Schema {
		return NumberSchema(NumberConfig{Minimum: ptr(-180.0), Maximum: ptr(180.0), Description: "Longitude coordinate", Example: ptr(-74.006)})
	},
	Weight: func() *Schema {
		return NumberSchema(NumberConfig{Minimum: ptr(0.0), Description: "Weight in kilograms", Example: ptr(70.5)})
	},
	Temperature: func() *Schema {
		return NumberSchema(NumberConfig{Description: "Temperature in Celsius", Example: ptr(22.5)})
	},
}

// CommonIntegerSchemas holds integer presets.
var CommonIntegerSchemas = struct {
	ID, Age, Year, Page, Limit, Count, Port, HTTPStatus Preset
}{
	ID: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(1.0), Description: "Unique identifier", Example: ptr(123.0)})
	},
	Age: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(0.0), Maximum: ptr(150.0), Description: "Age in years", Example: ptr(25.0)})
	},
	Year: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(1900.0), Maximum: ptr(2100.0), Description: "Year", Example: ptr(2025.0)})
	},
	Page: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(1.0), Default: ptr(1.0), Description: "Page number for pagination", Example: ptr(1.0)})
	},
	Limit: func() *Schema {
		return IntegerSchema(NumberConfig{
			Minimum: ptr(1.0), Maximum: ptr(100.0), Default: ptr(10.0),
			Description: "Number of items per page", Example: ptr(10.0),
		})
	},
	Count: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(0.0), Description: "Count of items", Example: ptr(42.0)})
	},
	Port: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(1.0), Maximum: ptr(65535.0), Description: "Network port number", Example: ptr(8080.0)})
	},
	HTTPStatus: func() *Schema {
		return IntegerSchema(NumberConfig{Minimum: ptr(100.0), Maximum: ptr(599.0), Description: "HTTP status code", Example: ptr(200.0)})
	},
}

// CommonArraySchemas holds array presets.
var CommonArraySchemas = struct {
	Strings, Integers, Tags, IDs, Emails, Coordinates Preset
}{
	Strings: func() *Schema {
		return ArraySchema(ArrayConfig{
			Items:       StringSchema(StringConfig{}),
			Description: "Array of strings",
			Example:     []any{"item1", "item2"},
		})
	},
	Integers: func() *Schema {
		return ArraySchema(ArrayConfig{
			Items:       IntegerSchema(NumberConfig{}),
			Description: "Array of integers",
			Example:     []any{1, 2, 3},
		})
	},
	Tags: func() *Schema {
		return ArraySchema(ArrayConfig{
			Items:       StringSchema(StringConfig{MinLength: 1}),
			UniqueItems: ptr(true),
			MinItems:    ptr(1),
			MaxItems:    ptr(20),
			Description: "Array of unique tags",
			Example:     []any{"frontend", "javascript", "react"},
		})
	},
	IDs: func() *Schema {
		return ArraySchema(ArrayConfig{
			Items:       IntegerSchema(NumberConfig{Minimum: ptr(1.0)}),
			UniqueItems: ptr(true),
			MinItems:    ptr(1),
			Description: "Array of unique IDs",
			Example:     []any{1, 2, 3},
		})
	},
	Emails: func() *Schema {
		return ArraySchema(ArrayConfig{
			Items:       StringSchema(StringConfig{Format: "email"}),
			UniqueItems: ptr(true),
			Description: "Array of email addresses",
			Example:     []any{"user1@example.com", "user2@example.com"},
		})
	},
	Coordinates: func() *Schema {
		return ArraySchema(ArrayConfig{
			Items:       NumberSchema(NumberConfig{}),
			MinItems:    ptr(2),
			MaxItems:    ptr(2),
			Description: "Latitude and longitude coordinates",
			Example:     []any{40.7128, -74.006},
		})
	},
}

// CommonObjectSchemas holds object presets.
var CommonObjectSchemas = struct {
	Error, Pagination Preset
}{
	Error: func() *Schema {
		return ObjectSchema(ObjectConfig{
			Properties: map[string]*Schema{
				"code":      StringSchema(StringConfig{Description: "Error code"}),
				"message":   StringSchema(StringConfig{Description: "Error message"}),
				"details":   ArraySchema(ArrayConfig{Items: StringSchema(StringConfig{}), Description: "Error details"}),
				"timestamp": StringSchema(StringConfig{Format: "date-time", Description: "Error timestamp"}),
			},
			Required:    []string{"code", "message"},
			Description: "Error object",
		})
	},
	Pagination: func() *Schema {
		return ObjectSchema(ObjectConfig{
			Properties: map[string]*Schema{
				"page":        IntegerSchema(NumberConfig{Minimum: ptr(1.0), Description: "Current page number"}),
				"limit":       IntegerSchema(NumberConfig{Minimum: ptr(1.0), Description: "Items per page"}),
				"total":       IntegerSchema(NumberConfig{Minimum: ptr(0.0), Description: "Total number of items"}),
				"totalPages":  IntegerSchema(NumberConfig{Minimum: ptr(0.0), Description: "Total number of pages"}),
				"hasNext":     BooleanSchema("Whether there are more pages"),
				"hasPrevious": BooleanSchema("Whether there are previous pages"),
			},
			Required:    []string{"page", "limit", "total"},
			Description: "Pagination metadata",
		})
	},
}
