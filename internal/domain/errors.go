package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeDuplicateOID         = "DUPLICATE_OID"
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	CodeIntegrityViolation   = "INTEGRITY_VIOLATION"
	CodeNotFound             = "NOT_FOUND"
	CodeIOFailure            = "IO_FAILURE"
	CodeLeagueExists         = "LEAGUE_EXISTS"
	CodeTeamExists           = "TEAM_EXISTS"
	CodeMemberExists         = "MEMBER_EXISTS"
	CodeBadRequest           = "BAD_REQUEST"
)

var (
	// ErrDuplicateOID - объект с таким OID уже есть в коллекции
	ErrDuplicateOID = &DomainError{
		Code:    CodeDuplicateOID,
		Message: "oid already exists",
	}

	// ErrDuplicateEmail - email уже используется другим участником команды
	ErrDuplicateEmail = &DomainError{
		Code:    CodeDuplicateEmail,
		Message: "email already exists in team",
	}

	// ErrReferentialIntegrity - соревнование ссылается на команду вне лиги
	ErrReferentialIntegrity = &DomainError{
		Code:    CodeReferentialIntegrity,
		Message: "team is not registered in league",
	}

	// ErrIntegrityViolation - команда участвует в соревновании и не может быть удалена
	ErrIntegrityViolation = &DomainError{
		Code:    CodeIntegrityViolation,
		Message: "team is referenced by a competition",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrIOFailure - файл отсутствует или не читается/не пишется
	ErrIOFailure = &DomainError{
		Code:    CodeIOFailure,
		Message: "i/o failure",
	}

	// ErrLeagueExists - лига с таким именем уже есть
	ErrLeagueExists = &DomainError{
		Code:    CodeLeagueExists,
		Message: "league name already exists",
	}

	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "team name already exists",
	}

	ErrMemberExists = &DomainError{
		Code:    CodeMemberExists,
		Message: "member name already exists in team",
	}

	ErrBadRequest = &DomainError{
		Code:    CodeBadRequest,
		Message: "bad request",
	}
)

// NewDuplicateOIDError создает ошибку DUPLICATE_OID с указанием вида объекта
func NewDuplicateOIDError(kind Kind, oid int) *DomainError {
	return &DomainError{
		Code:    CodeDuplicateOID,
		Message: fmt.Sprintf("%s with oid %d already exists", kind, oid),
	}
}

func NewDuplicateEmailError(email string) *DomainError {
	return &DomainError{
		Code:    CodeDuplicateEmail,
		Message: fmt.Sprintf("email %s already exists in team", email),
	}
}

func NewReferentialIntegrityError(teamName, leagueName string) *DomainError {
	return &DomainError{
		Code:    CodeReferentialIntegrity,
		Message: fmt.Sprintf("team %s is not registered in league %s", teamName, leagueName),
	}
}

func NewIntegrityViolationError(teamName string) *DomainError {
	return &DomainError{
		Code:    CodeIntegrityViolation,
		Message: fmt.Sprintf("team %s is in a competition and cannot be removed", teamName),
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewIOError оборачивает ошибку ввода-вывода кодом IO_FAILURE
func NewIOError(op, path string, err error) *DomainError {
	return &DomainError{
		Code:    CodeIOFailure,
		Message: fmt.Sprintf("%s %s: %v", op, path, err),
		Err:     err,
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
