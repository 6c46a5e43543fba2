// Copyright (c) 2017-2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	uconfig "go.uber.org/config"
)

// Environment variables the workflowclient command reads its global flags from
const (
	EnvKeyRoot             = "CADENCE_ROOT"
	EnvKeyConfigDir        = "CADENCE_CONFIG_DIR"
	EnvKeyEnvironment      = "CADENCE_ENVIRONMENT"
	EnvKeyAvailabilityZone = "CADENCE_AVAILABILITY_ZONE"
)

const (
	baseFile         = "base.yaml"
	envDevelopment   = "development"
	defaultConfigDir = "config"
	fileMode         = os.FileMode(0644)
)

// Load populates config from the yaml files of configDir, later files overriding earlier ones:
//
//	base.yaml
//	<env>.yaml        env defaults to development
//	<env>_<zone>.yaml only when zone is set
//
// Missing files are skipped but at least one must exist. Values of the form ${NAME} or
// ${NAME:default} are expanded from the process environment.
func Load(env string, configDir string, zone string, config interface{}) error {
	if env == "" {
		env = envDevelopment
	}
	if configDir == "" {
		configDir = defaultConfigDir
	}

	files := existingFiles(configFiles(env, configDir, zone))
	if len(files) == 0 {
		return fmt.Errorf("no config files found within %v", configDir)
	}

	options := make([]uconfig.YAMLOption, 0, len(files)+1)
	for _, f := range files {
		options = append(options, uconfig.File(f))
	}
	options = append(options, uconfig.Expand(os.LookupEnv))

	provider, err := uconfig.NewYAML(options...)
	if err != nil {
		return fmt.Errorf("parsing %v: %w", files, err)
	}
	return provider.Get(uconfig.Root).Populate(config)
}

func configFiles(env, configDir, zone string) []string {
	files := []string{path(configDir, baseFile), path(configDir, env+".yaml")}
	if zone != "" {
		files = append(files, path(configDir, env+"_"+zone+".yaml"))
	}
	return files
}

func existingFiles(candidates []string) []string {
	var found []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			found = append(found, f)
		}
	}
	return found
}

func path(dir string, file string) string {
	return filepath.Join(dir, file)
}
