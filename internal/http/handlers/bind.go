package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError reports one rejected request field under its JSON name, so API
// clients never see Go struct field names.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

// BindJSON decodes the request body into out and writes the 400 response
// itself when the body is rejected. Callers just bail out on false.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, "Invalid request body", bindFailureDetails(err, out))

		return false
	}

	return true
}

func bindFailureDetails(err error, out interface{}) interface{} {
	rootType := requestStructType(out)

	// binding-tag violations carry one entry per rejected field

	var fieldErrs validator.ValidationErrors

	if errors.As(err, &fieldErrs) {
		fields := make([]FieldError, 0, len(fieldErrs))

		for _, fe := range fieldErrs {
			rule := fe.Tag()
			param := fe.Param()

			fields = append(fields, FieldError{
				Field:   fieldPathForValidation(rootType, fe),
				Rule:    rule,
				Param:   param,
				Message: ruleMessage(rule, param),
			})
		}

		return gin.H{"fields": fields}
	}

	// body is not valid JSON at all

	var syntaxErr *json.SyntaxError

	if errors.As(err, &syntaxErr) {
		return gin.H{
			"json": "invalid_json_syntax",
		}
	}

	// valid JSON carrying the wrong type for a field

	var typeErr *json.UnmarshalTypeError

	if errors.As(err, &typeErr) {
		field := fieldPathForDotted(rootType, typeErr.Field)

		if field == "" {
			field = strings.TrimSpace(typeErr.Field)
		}

		return gin.H{
			"json":  "invalid_json_type",
			"field": field,
			"fields": []FieldError{
				{
					Field:   field,
					Rule:    "type",
					Message: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
				},
			},
		}
	}

	return gin.H{"reason": err.Error()}
}

func requestStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

// fieldPathForValidation translates a validator namespace like
// "CreateAllotmentRequest.PatientName" into the JSON path clients sent.
func fieldPathForValidation(rootType reflect.Type, fe validator.FieldError) string {
	namespace := fe.StructNamespace()

	if namespace == "" {
		namespace = fe.Namespace()
	}

	if namespace == "" {
		return fe.Field()
	}

	parts := strings.Split(namespace, ".")

	if len(parts) == 0 {
		return fe.Field()
	}

	// drop the leading request-struct name
	if rootType != nil && rootType.Name() != "" && parts[0] == rootType.Name() {
		parts = parts[1:]
	}

	if path := resolveJSONPath(rootType, parts); path != "" {
		return path
	}

	return fe.Field()
}

func fieldPathForDotted(rootType reflect.Type, dotPath string) string {
	dotPath = strings.TrimSpace(dotPath)

	if dotPath == "" {
		return ""
	}

	return resolveJSONPath(rootType, strings.Split(dotPath, "."))
}

// resolveJSONPath walks struct fields segment by segment, swapping each Go
// field name for its json tag. Index suffixes like "[2]" ride along.
func resolveJSONPath(rootType reflect.Type, parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	current := rootType
	out := make([]string, 0, len(parts))

	for _, rawPart := range parts {
		if rawPart == "" {
			continue
		}

		fieldName, indexSuffix := cutIndexSuffix(rawPart)
		jsonName := fieldName

		nextType := reflect.Type(nil)

		if current != nil {
			for current.Kind() == reflect.Pointer {
				current = current.Elem()
			}

			if current.Kind() == reflect.Struct {
				if sf, ok := current.FieldByName(fieldName); ok {
					jsonName = jsonTagName(sf)
					nextType = sf.Type
				}
			}
		}

		out = append(out, jsonName+indexSuffix)

		if nextType != nil {
			current = elementType(nextType)
		} else {
			current = nil
		}
	}

	return strings.Join(out, ".")
}

func cutIndexSuffix(part string) (string, string) {
	idx := strings.Index(part, "[")

	if idx == -1 {
		return part, ""
	}

	return part[:idx], part[idx:]
}

func jsonTagName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")

	if tag == "" {
		return sf.Name
	}

	name, _, _ := strings.Cut(tag, ",")

	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}

func elementType(t reflect.Type) reflect.Type {
	for t != nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}

	return nil
}

// ruleMessage spells out the rules this API actually binds with; anything
// unlisted falls through to a generic phrasing.
func ruleMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid uuid"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "len":
		return "must be exactly " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
