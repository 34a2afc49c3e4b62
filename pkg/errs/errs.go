// Package errs provides structured error handling for the caseboard
// backend. The design follows the errs package from
// https://github.com/gilcrest/diygoapi which in turn derives from the
// upspin project's error handling.
package errs

import (
	"bytes"
	"errors"
	"fmt"
)

// Error is the type that implements the error interface. An Error
// value may leave some fields unset.
type Error struct {
	// User is the username of the user attempting the operation.
	User UserName
	// Kind is the class of error, such as permission failure.
	Kind Kind
	// Param represents the parameter related to the error.
	Param Parameter
	// Code is a human-readable, short representation of the error.
	Code Code
	// The underlying error that triggered this one, if any.
	Err error
}

func (e *Error) Error() string {
	b := new(bytes.Buffer)
	if e.Kind != 0 {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		pad(b, ": ")
		b.WriteString(e.Err.Error())
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

// Unwrap method allows for unwrapping errors using errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) isZero() bool {
	return e.User == "" && e.Kind == 0 && e.Param == "" && e.Code == "" && e.Err == nil
}

// pad appends str to the buffer if the buffer already has some data.
func pad(b *bytes.Buffer, str string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(str)
}

// Op describes an operation, usually as the package and method,
// such as "sketchService.GetSketch".
type Op string

// UserName is a username of the user attempting the operation.
type UserName string

// Parameter represents the request parameter related to the error.
type Parameter string

// Code is a human-readable, short representation of the error.
type Code string

// Kind defines the kind of error this is.
type Kind uint8

// Kinds of errors.
//
// Do not reorder this list or remove any items since that will
// change their values. New items must be added only to the end.
const (
	Other           Kind = iota // Unclassified error.
	Invalid                     // Invalid operation for this type of item.
	IO                          // External I/O error such as network failure.
	Exist                       // Item already exists.
	NotExist                    // Item does not exist.
	Private                     // Information withheld.
	Internal                    // Internal error or inconsistency.
	Database                    // Error from database.
	Validation                  // Input validation error.
	InvalidRequest              // Invalid request.
	Unauthenticated             // Unauthenticated request.
	Unauthorized                // Unauthorized request.
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Invalid:
		return "invalid operation"
	case IO:
		return "I/O error"
	case Exist:
		return "item already exists"
	case NotExist:
		return "item does not exist"
	case Private:
		return "information withheld"
	case Internal:
		return "internal error"
	case Database:
		return "database error"
	case Validation:
		return "input validation error"
	case InvalidRequest:
		return "invalid request"
	case Unauthenticated:
		return "unauthenticated request"
	case Unauthorized:
		return "unauthorized request"
	}
	return "unknown error kind"
}

// E builds an error value from its arguments. There must be at least
// one argument or E panics. The type of each argument determines its
// meaning. If more than one argument of a given type is presented,
// only the last one is recorded.
//
// The types are:
//
//	errs.Op
//		The operation being performed.
//	errs.UserName
//		The username of the user attempting the operation.
//	errs.Kind
//		The class of error.
//	errs.Parameter
//		The parameter related to the error.
//	errs.Code
//		A short code describing the error.
//	string
//		Treated as an error message and assigned to the Err field
//		after a call to errors.New.
//	error
//		The underlying error that triggered this one.
//
// If Kind is not specified or Other, E sets it to the Kind of the
// underlying error.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("call to errs.E with no arguments")
	}
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			// ops are logged, not retained on the error value
			continue
		case string:
			e.Err = errors.New(arg)
		case UserName:
			e.User = arg
		case Kind:
			e.Kind = arg
		case Parameter:
			e.Param = arg
		case Code:
			e.Code = arg
		case *Error:
			eCopy := *arg
			e.Err = &eCopy
		case error:
			e.Err = arg
		default:
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	prev, ok := e.Err.(*Error)
	if !ok {
		return e
	}

	// The previous error was also one of ours. Suppress duplications
	// so the message won't contain the same kind twice.
	if prev.Kind == e.Kind {
		prev.Kind = Other
	}
	if e.Kind == Other {
		e.Kind = prev.Kind
		prev.Kind = Other
	}
	if e.Code == "" {
		e.Code = prev.Code
		prev.Code = ""
	}
	if e.Param == "" {
		e.Param = prev.Param
		prev.Param = ""
	}
	if e.User == "" {
		e.User = prev.User
		prev.User = ""
	}
	if prev.isZero() {
		e.Err = prev.Err
	}

	return e
}

// Str returns an error from a string. It is a convenience for cases
// where the caller wants an error with only a message.
func Str(text string) error {
	return errors.New(text)
}

// KindIs reports whether err is an *Error of the given Kind.
func KindIs(kind Kind, err error) bool {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind != Other {
			return e.Kind == kind
		}
		if e.Err != nil {
			return KindIs(kind, e.Err)
		}
	}
	return false
}
