package helpers

// Deployment stages. STAGE selects the configuration source: deployed
// stages resolve secrets from AWS Secrets Manager, local reads the
// environment directly.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage reports whether stage is one of the known deployment stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}
