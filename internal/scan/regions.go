package scan

// DefaultRegions is the candidate list used for region resolution when the
// caller does not supply one. Order matters: resolution stops at the first
// region that serves the bucket, and the common US/APAC/EU regions come
// first to keep the usual case cheap.
var DefaultRegions = []string{
	"us-east-1", "us-east-2", "us-west-1", "us-west-2", "af-south-1",
	"ap-east-1", "ap-south-1", "ap-south-2", "ap-northeast-1", "ap-northeast-2",
	"ap-northeast-3", "ap-southeast-1", "ap-southeast-2", "ap-southeast-3",
	"ap-southeast-4", "ap-southeast-5", "ap-southeast-7", "ca-central-1",
	"ca-west-1", "eu-central-1", "eu-central-2", "eu-west-1", "eu-west-2",
	"eu-west-3", "eu-south-1", "eu-north-1", "il-central-1", "me-south-1",
	"mx-central-1", "sa-east-1",
}
