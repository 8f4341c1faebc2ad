package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	terrasheet "github.com/wabcloud/terrasheet/pkg/terrasheet"
)

func TestPackageDocumentSet(t *testing.T) {
	docs, err := Package(configFixture(), Options{})
	require.NoError(t, err)

	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Name
		assert.NotEmpty(t, doc.Content, "document %s is empty", doc.Name)
	}
	assert.Equal(t, []string{
		"m-basevm.tf",
		"variables.tf",
		"terraform.tfvars",
		"outputs.tf",
		"versions.tf",
		"data.tf",
		"locals.tf",
		"r-rg.tf",
		"r-asg.tf",
		"r-nsr.tf",
		"r-kvlt.tf",
		"scripts/validate.sh",
		"docs/README.md",
	}, names)
}

func TestPackageExecutableBit(t *testing.T) {
	docs, err := Package(configFixture(), Options{})
	require.NoError(t, err)

	for _, doc := range docs {
		if doc.Name == "scripts/validate.sh" {
			assert.True(t, doc.Executable)
		} else {
			assert.False(t, doc.Executable, "%s should not be executable", doc.Name)
		}
	}
}

func TestPackageLocationValidation(t *testing.T) {
	cfg := configFixture()
	cfg.Location = "NORTH EUROPE"

	_, err := Package(cfg, Options{ValidateLocation: true})
	require.Error(t, err)

	var valErr *terrasheet.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "location", valErr.Field)
	assert.Equal(t, "NORTH EUROPE", valErr.Value)
	assert.Equal(t, AllowedLocations, valErr.Allowed)
}

func TestPackageLocationValidationCaseInsensitive(t *testing.T) {
	cfg := configFixture()
	cfg.Location = "west us 2"

	_, err := Package(cfg, Options{ValidateLocation: true})
	assert.NoError(t, err)
}

func TestPackageLocationPassThroughByDefault(t *testing.T) {
	cfg := configFixture()
	cfg.Location = "NORTH EUROPE"

	docs, err := Package(cfg, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	assert.Contains(t, docs[2].Content, `location = "NORTH EUROPE"`)
}

func TestReadme(t *testing.T) {
	cfg := configFixture()
	cfg.Defaulted = []string{"environment"}

	out := readme(cfg)
	assert.Contains(t, out, "# Deployment Package: Payments Platform")
	assert.Contains(t, out, "| web01 | Standard_D2s_v5 | linux |")
	assert.Contains(t, out, "## Defaulted fields")
	assert.Contains(t, out, "- environment")
	assert.Contains(t, out, "terraform init")
}
