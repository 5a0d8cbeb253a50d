package constants

import "errors"

// Configuration errors.
var (
	ErrNoRegionConfigured   = errors.New("no region configured, use 'apigw configure' or set APIGW_REGION")
	ErrNoProfileConfigured  = errors.New("profile not found in configuration")
	ErrSecretKeyRequired    = errors.New("secret access key is required when an access key ID is set")
	ErrAccessKeyRequired    = errors.New("access key ID is required when a secret access key is set")
	ErrInvalidOutputFormat  = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidKeyValue      = errors.New("invalid key=value pair")
	ErrInvalidPatchOp       = errors.New("invalid patch operation, use op:path[=value]")
	ErrInvalidImportMode    = errors.New("invalid import mode, use merge or overwrite")
	ErrS3KeyPrefixWithoutS3 = errors.New("--s3-prefix requires --s3-bucket")
)

// Required field errors.
var (
	ErrNameRequired       = errors.New("--name flag is required")
	ErrDeploymentRequired = errors.New("--deployment-id flag is required")
	ErrFileRequired       = errors.New("--file flag is required")
	ErrTagsRequired       = errors.New("at least one tag is required")
)
