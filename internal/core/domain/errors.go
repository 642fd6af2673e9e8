package domain

import "go.trai.ch/zerr"

var (
	// ErrRevisionResolveFailed is returned when the branch revision lookup fails.
	ErrRevisionResolveFailed = zerr.New("failed to resolve branch revision")

	// ErrRevisionParseFailed is returned when parsing a revision response fails.
	ErrRevisionParseFailed = zerr.New("failed to parse revision response")

	// ErrRevisionNotResolved is returned when the revision is read before resolution succeeded.
	ErrRevisionNotResolved = zerr.New("revision not resolved")

	// ErrFileFetchFailed is returned when a source file cannot be fetched at the resolved revision.
	ErrFileFetchFailed = zerr.New("failed to fetch file at revision")

	// ErrFileNotLoaded is returned when a file is read from the snapshot before it was ensured.
	ErrFileNotLoaded = zerr.New("file not loaded in snapshot")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find refmap.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingProtocolPath is returned when the config does not name a protocol description file.
	ErrMissingProtocolPath = zerr.New("protocol file path is required")

	// ErrMissingRepository is returned when the config does not name an implementation repository.
	ErrMissingRepository = zerr.New("repository is required")

	// ErrInvalidRepository is returned when the repository is not in owner/name form.
	ErrInvalidRepository = zerr.New("invalid repository, expected format: owner/name")

	// ErrMissingHandlerFile is returned when the config does not name a handler source file.
	ErrMissingHandlerFile = zerr.New("handler file path is required")

	// ErrMissingTypesFile is returned when the config does not name a types source file.
	ErrMissingTypesFile = zerr.New("types file path is required")

	// ErrProtocolReadFailed is returned when the protocol description cannot be read.
	ErrProtocolReadFailed = zerr.New("failed to read protocol description")

	// ErrProtocolParseFailed is returned when the protocol description cannot be parsed.
	ErrProtocolParseFailed = zerr.New("failed to parse protocol description")
)
