package license

// Kind is the machine-distinguishable gate failure reason. The client
// branches on it to steer the tenant toward renewal vs. support contact.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindNoLicense       Kind = "no_license"
	KindSuspended       Kind = "license_suspended"
	KindExpired         Kind = "license_expired"
)

// GateError is a terminal gate failure. It is never retried; the request is
// rejected with the kind and message as-is.
type GateError struct {
	Kind    Kind
	Message string
}

func (e *GateError) Error() string {
	return e.Message
}

var (
	ErrUnauthenticated = &GateError{Kind: KindUnauthenticated, Message: "missing or invalid credentials"}
	ErrNoLicense       = &GateError{Kind: KindNoLicense, Message: "no license found for this salon, please contact support"}
	ErrSuspended       = &GateError{Kind: KindSuspended, Message: "license suspended, please contact support"}
	ErrExpired         = &GateError{Kind: KindExpired, Message: "license expired, please renew your subscription"}
)
