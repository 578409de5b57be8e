package definition

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/adhocore/gronx"
	"github.com/expr-lang/expr"
	"github.com/gclaussn/go-bpmn-model/model"
	"github.com/go-playground/validator/v10"
)

// InterpreterExpr is the interpreter of expressions, written in the expr language.
//
// see https://expr-lang.org/docs/language-definition
const InterpreterExpr = "EXPR"

var (
	validate = newValidate()

	// embedded design structs, which are not part of a JSON pointer
	embeddedFields = map[string]bool{
		"ActivityBase":  true,
		"CatchTriggers": true,
		"FlowNode":      true,
		"HumanTask":     true,
		"ThrowTriggers": true,
	}
)

func newValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0] // e.g. `json:"flowElements,omitempty"` -> flowElements
	})

	validate.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		return gronx.IsValid(fl.Field().String())
	})
	validate.RegisterValidation("element_name", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return strings.TrimSpace(v) != "" && !strings.ContainsRune(v, '/')
	})
	validate.RegisterValidation("iso8601_duration", func(fl validator.FieldLevel) bool {
		_, err := model.NewISO8601Duration(fl.Field().String())
		return err == nil
	})

	return validate
}

// Validate validates the fields of a process design.
// If the design is invalid, an error of type [ErrorValidation] is returned, which contains a cause per invalid field.
// A cause's pointer is a JSON pointer like #/flowElements/activities/0/name.
func Validate(design *model.ProcessDefinition) error {
	if design == nil {
		return Error{
			Type:   ErrorValidation,
			Title:  "failed to validate process",
			Detail: "process design is nil",
		}
	}

	err := validate.Struct(design)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Error{
			Type:   ErrorBug,
			Title:  "failed to validate process",
			Detail: err.Error(),
		}
	}

	causes := make([]ErrorCause, len(validationErrors))
	for i, fieldError := range validationErrors {
		var detail string
		switch fieldError.Tag() {
		case "gte":
			detail = fmt.Sprintf("must be greater than or equal to %s", fieldError.Param())
		case "max":
			detail = fmt.Sprintf("exceeds a maximum of %s", fieldError.Param())
		case "required":
			detail = "is required"
		case "required_without":
			detail = fmt.Sprintf("is required, when %s is not set", strings.ToLower(fieldError.Param()))
		// custom validation
		case "element_name":
			detail = "must not be blank or contain a slash"
		default:
			detail = "is invalid"
		}

		causes[i] = ErrorCause{
			Pointer: fieldPointer(fieldError.Namespace()),
			Type:    fieldError.Tag(),
			Detail:  detail,
		}
	}

	return Error{
		Type:   ErrorValidation,
		Title:  "failed to validate process",
		Detail: fmt.Sprintf("process %s:%s is invalid", design.Name, design.Version),
		Causes: causes,
	}
}

// fieldPointer converts a validator namespace into a JSON pointer,
// e.g. ProcessDefinition.flowElements.activities[0].ActivityBase.FlowNode.name -> #/flowElements/activities/0/name
func fieldPointer(namespace string) string {
	_, path, _ := strings.Cut(namespace, ".") // skip struct name

	var sb strings.Builder
	sb.WriteRune('#')

	for _, segment := range strings.Split(path, ".") {
		name, index, indexed := strings.Cut(segment, "[")
		if embeddedFields[name] {
			continue
		}

		sb.WriteRune('/')
		sb.WriteString(name)

		if indexed {
			sb.WriteRune('/')
			sb.WriteString(strings.TrimSuffix(index, "]"))
		}
	}

	return sb.String()
}

// checkExpression compiles expressions, interpreted by expr, to check their syntax.
// If condition is true, conditions without interpreter are checked as well and must evaluate to a boolean.
// Dependencies are checked recursively.
func checkExpression(e Expression, condition bool) error {
	if e.IsZero() {
		return nil
	}

	for _, dependency := range e.dependencies {
		if err := checkExpression(dependency, false); err != nil {
			return err
		}
	}

	switch {
	case e.interpreter == InterpreterExpr:
	case condition && e.interpreter == "" && e.expressionType == model.ExpressionCondition:
	default:
		return nil
	}

	options := []expr.Option{expr.AllowUndefinedVariables()}
	if condition || isBooleanType(e.returnType) {
		options = append(options, expr.AsBool())
	}

	if _, err := expr.Compile(e.content, options...); err != nil {
		return fmt.Errorf("failed to compile expression %s: %v", e.content, err)
	}
	return nil
}

// checkTimer checks the expression of a timer trigger, if it is a constant.
//
//   - CYCLE: CRON expression
//   - DATE: RFC 3339 timestamp or epoch milliseconds
//   - DURATION: ISO 8601 duration or milliseconds
func checkTimer(timer *TimerTrigger) error {
	e := timer.expression
	if e.expressionType != model.ExpressionConstant {
		return nil
	}

	content := strings.TrimSpace(e.content)

	var err error
	switch timer.timerType {
	case model.TimerCycle:
		err = validate.Var(content, "required,cron")
	case model.TimerDate:
		if !isMillis(content) {
			_, err = time.Parse(time.RFC3339, content)
		}
	case model.TimerDuration:
		if !isMillis(content) {
			err = validate.Var(content, "required,iso8601_duration")
		}
	default:
		return fmt.Errorf("timer type %s is not supported", timer.timerType)
	}

	if err != nil {
		return fmt.Errorf("invalid timer %s %s", timer.timerType, e.content)
	}
	return nil
}

func isMillis(s string) bool {
	v, err := strconv.ParseInt(s, 10, 64)
	return err == nil && v >= 0
}

func isBooleanType(returnType string) bool {
	switch strings.ToLower(returnType) {
	case "bool", "boolean", "java.lang.boolean":
		return true
	default:
		return false
	}
}
