package upload

import "errors"

var (
	// ErrInvalidConfig is returned when the store configuration is incomplete
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// ErrInvalidPath is returned when a path escapes the managed directory tree
	ErrInvalidPath = errors.New("invalid path")

	// ErrFileNotFound is returned when a file does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrNoMultipartForm is returned when the request does not carry a multipart form
	ErrNoMultipartForm = errors.New("request has no multipart form")

	// ErrFailedToCreateDirectory is returned when the target directory cannot be created
	ErrFailedToCreateDirectory = errors.New("failed to create upload directory")

	// ErrDirectoryNotWritable is returned when the target directory exists but rejects writes
	ErrDirectoryNotWritable = errors.New("upload directory is not writable")

	// ErrFailedToOpenFile is returned when a file cannot be opened
	ErrFailedToOpenFile = errors.New("failed to open file")

	// ErrFailedToReadFile is returned when a file cannot be read
	ErrFailedToReadFile = errors.New("failed to read file")

	// ErrFailedToWriteFile is returned when a file cannot be written
	ErrFailedToWriteFile = errors.New("failed to write file")

	// ErrFailedToHashFile is returned when file hashing fails
	ErrFailedToHashFile = errors.New("failed to hash file")

	// ErrFailedToGetAbsolutePath is returned when absolute path cannot be determined
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
)
