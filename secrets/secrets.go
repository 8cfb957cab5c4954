package secrets

import (
	"encoding/json"
	"os"

	"github.com/spf13/afero"

	"portfolio0/config"
	"portfolio0/constants"
)

// PortfolioSecrets holds the shared revalidation secret and the external
// build webhook URL. Either may be empty; the features that depend on them
// degrade to logged no-ops.
type PortfolioSecrets struct {
	RevalidationSecret string `json:"revalidationSecret" yaml:"RevalidationSecret"`
	BuildHookURL       string `json:"buildHookUrl" yaml:"BuildHookURL"`
}

var cachedSecrets *PortfolioSecrets

// GetSecrets retrieves secrets from a .portfolio0 file next to the binary,
// falling back to environment variables when the file does not exist.
func GetSecrets() *PortfolioSecrets {
	if cachedSecrets != nil {
		return cachedSecrets
	}

	binPath := config.GetBinPath()

	fs := afero.NewOsFs()
	data, err := afero.ReadFile(fs, binPath+"/"+constants.SecretsFileName)
	if err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	secrets := PortfolioSecrets{}

	if os.IsNotExist(err) {
		secrets = getSecretsFromEnv()
	} else {
		err = json.Unmarshal(data, &secrets)
		if err != nil {
			panic(err)
		}
	}

	cachedSecrets = &secrets
	return cachedSecrets
}

// SaveSecrets writes the secrets into the .portfolio0 file
func SaveSecrets(secretsInput *PortfolioSecrets) *PortfolioSecrets {
	binPath := config.GetBinPath()

	fs := afero.NewOsFs()
	data, err := json.Marshal(secretsInput)
	if err != nil {
		panic(err)
	}

	err = afero.WriteFile(fs, binPath+"/"+constants.SecretsFileName, data, os.ModePerm)
	if err != nil {
		panic(err)
	}

	cachedSecrets = secretsInput

	return cachedSecrets
}

func getSecretsFromEnv() PortfolioSecrets {
	secrets := PortfolioSecrets{}

	if val, ok := os.LookupEnv(constants.RevalidationSecretEnv); ok {
		secrets.RevalidationSecret = val
	}

	if val, ok := os.LookupEnv(constants.BuildHookURLEnv); ok {
		secrets.BuildHookURL = val
	}

	return secrets
}
