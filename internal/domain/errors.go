package domain

import "errors"

var (
	// ErrInvalidNationalID возвращается, когда CPF не содержит ровно 11 цифр
	ErrInvalidNationalID = errors.New("domain: national id must have exactly 11 digits")

	// ErrInvalidEmail возвращается при некорректном формате email
	ErrInvalidEmail = errors.New("domain: invalid email format")

	// ErrInvalidTaxID возвращается при некорректном формате CNPJ
	ErrInvalidTaxID = errors.New("domain: invalid tax id format")

	// ErrNegativePrice возвращается при отрицательной цене услуги
	ErrNegativePrice = errors.New("domain: service price must not be negative")

	// ErrNegativeDuration возвращается при отрицательной длительности услуги
	ErrNegativeDuration = errors.New("domain: service duration must not be negative")

	// ErrInvalidDateTime возвращается, когда дату/время не удалось разобрать
	ErrInvalidDateTime = errors.New("domain: invalid date time")

	// ErrUnsupportedFormat возвращается для неизвестного формата документа
	ErrUnsupportedFormat = errors.New("domain: unsupported document format")
)
