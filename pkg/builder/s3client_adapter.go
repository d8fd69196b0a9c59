package builder

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	s3ClientAdapter "github.com/algoscope/algoscope/pkg/internal/adapter/s3client"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// S3ClientAdapter uploads archived run files to S3-compatible storage.
type S3ClientAdapter = types.S3ClientAdapter

// S3ClientDeps carries the AWS client and bucket wiring for the adapter.
type S3ClientDeps = types.S3ClientDeps

// S3UploadConfig controls key layout and object metadata for uploaded runs.
type S3UploadConfig = types.S3UploadConfig

// S3ClientOption configures an S3ClientAdapter.
type S3ClientOption = types.S3ClientOption

////////////////////////
// Adapter constructor +
////////////////////////

// NewS3Client creates a new S3 upload adapter.
func NewS3Client(ctx context.Context, options ...types.S3ClientOption) types.S3ClientAdapter {
	return s3ClientAdapter.NewClient(ctx, options...)
}

func S3ClientWithS3ClientDeps(deps types.S3ClientDeps) types.S3ClientOption {
	return s3ClientAdapter.WithS3ClientDeps(deps)
}

func S3ClientWithUploadConfig(cfg types.S3UploadConfig) types.S3ClientOption {
	return s3ClientAdapter.WithUploadConfig(cfg)
}

func S3ClientWithSensor(sensor ...types.Sensor[string]) types.S3ClientOption {
	return s3ClientAdapter.WithSensor(sensor...)
}

func S3ClientWithLogger(l ...types.Logger) types.S3ClientOption {
	return s3ClientAdapter.WithLogger(l...)
}

func S3ClientWithComponentMetadata(name string, id string) types.S3ClientOption {
	return s3ClientAdapter.WithComponentMetadata(name, id)
}

// Inject AWS client + bucket without exposing internal types.
func S3ClientWithClientAndBucket(cli *s3.Client, bucket string) types.S3ClientOption {
	return s3ClientAdapter.WithS3ClientDeps(types.S3ClientDeps{
		Client:         cli,
		Bucket:         bucket,
		ForcePathStyle: true, // default good for LocalStack/MinIO
	})
}

// Upload convenience: set prefix template without exposing internals.
func S3ClientWithPrefixTemplate(prefix string) types.S3ClientOption {
	return s3ClientAdapter.WithUploadConfig(types.S3UploadConfig{
		PrefixTemplate: prefix,
	})
}

/////////////////////////////////////////////
// Compliant S3 client constructors (no env)
/////////////////////////////////////////////

// NewS3ClientStatic creates an S3 client using static credentials.
// If endpoint != "", it's used (LocalStack/MinIO). forcePathStyle=true for emulators.
func NewS3ClientStatic(
	ctx context.Context,
	region string,
	accessKey string,
	secretKey string,
	sessionToken string, // "" if none
	endpoint string, // "" for AWS
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	loaders = append(loaders, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken),
	))
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = forcePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewS3ClientDefault creates an S3 client from the default credential chain
// (env, shared config, instance metadata). endpoint may be "" for AWS.
func NewS3ClientDefault(
	ctx context.Context,
	region string,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = forcePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewS3ClientAssumeRole creates an S3 client by assuming an IAM role via STS.
// sourceCreds: underlying creds to call STS (static keys, SSO, etc.). If nil, default chain.
// externalID optional. duration capped by role MaxSessionDuration.
func NewS3ClientAssumeRole(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	duration time.Duration,
	externalID string,
	sourceCreds aws.CredentialsProvider, // nil => default provider chain
	endpoint string, // optional S3/STS endpoint override
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	if sourceCreds != nil {
		loaders = append(loaders, config.WithCredentialsProvider(sourceCreds))
	}
	baseCfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}

	// STS gets the same endpoint override (so it doesn't go to real AWS).
	stsClient := sts.NewFromConfig(baseCfg, func(o *sts.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	provider := stscreds.NewAssumeRoleProvider(stsClient, roleARN, func(o *stscreds.AssumeRoleOptions) {
		if sessionName != "" {
			o.RoleSessionName = sessionName
		}
		if duration > 0 {
			o.Duration = duration
		}
		if externalID != "" {
			o.ExternalID = &externalID
		}
	})

	assumed := baseCfg
	assumed.Credentials = aws.NewCredentialsCache(provider)

	return s3.NewFromConfig(assumed, func(o *s3.Options) {
		o.UsePathStyle = forcePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewS3ClientWebIdentity assumes a role using an OIDC/WebIdentity token file (e.g., EKS IRSA).
func NewS3ClientWebIdentity(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	tokenFile string,
	duration time.Duration,
	endpoint string, // optional S3/STS endpoint override
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	stsClient := sts.NewFromConfig(cfg, func(o *sts.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	provider := stscreds.NewWebIdentityRoleProvider(
		stsClient,
		roleARN,
		stscreds.IdentityTokenFile(tokenFile),
		func(o *stscreds.WebIdentityRoleOptions) {
			if sessionName != "" {
				o.RoleSessionName = sessionName
			}
			if duration > 0 {
				o.Duration = duration
			}
		},
	)

	assumed := cfg
	assumed.Credentials = aws.NewCredentialsCache(provider)

	return s3.NewFromConfig(assumed, func(o *s3.Options) {
		o.UsePathStyle = forcePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}
