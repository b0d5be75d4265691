package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Usar os nomes das tags JSON nas mensagens de erro
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Objetivos aceitos pelo wizard
	validate.RegisterValidation("objective", func(fl validator.FieldLevel) bool {
		objective := fl.Field().String()
		valid := []string{
			"BRAND_AWARENESS", "REACH", "ENGAGEMENT",
			"LEAD_GENERATION", "TRAFFIC", "CONVERSIONS",
		}
		for _, o := range valid {
			if objective == o {
				return true
			}
		}
		return false
	})

	validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		gender := fl.Field().String()
		return gender == "all" || gender == "male" || gender == "female"
	})

	validate.RegisterValidation("budget_type", func(fl validator.FieldLevel) bool {
		budgetType := fl.Field().String()
		return budgetType == "daily" || budgetType == "lifetime"
	})
}

// Struct valida uma struct e retorna o erro de validação, se houver
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Messages converte erros de validação em mensagens por campo
func Messages(err error) map[string]string {
	messages := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["_"] = err.Error()
		return messages
	}

	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			messages[fieldError.Field()] = "campo obrigatório"
		case "objective":
			messages[fieldError.Field()] = "objetivo de campanha inválido"
		case "gender":
			messages[fieldError.Field()] = "gênero deve ser all, male ou female"
		case "budget_type":
			messages[fieldError.Field()] = "tipo de orçamento deve ser daily ou lifetime"
		case "gt":
			messages[fieldError.Field()] = "deve ser maior que " + fieldError.Param()
		case "gte":
			messages[fieldError.Field()] = "deve ser maior ou igual a " + fieldError.Param()
		case "lte":
			messages[fieldError.Field()] = "deve ser menor ou igual a " + fieldError.Param()
		case "url":
			messages[fieldError.Field()] = "deve ser uma URL válida"
		default:
			messages[fieldError.Field()] = "valor inválido"
		}
	}

	return messages
}
