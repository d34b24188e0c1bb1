// Package siteconfig exposes site settings (contact details, app
// description) as plain-text lines appended to the knowledge-base source.
package siteconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the platform's site-settings record.
type Settings struct {
	AppDescriptionFA string `yaml:"app_description_fa"`
	AppDescriptionEN string `yaml:"app_description_en"`
	ContactEmail     string `yaml:"contact_email"`
	ContactPhone     string `yaml:"contact_phone"`
	AddressFA        string `yaml:"address_fa"`
	AddressEN        string `yaml:"address_en"`
}

// FileProvider reads settings from a YAML file on every call so that
// edits are picked up without a restart. It implements domain.SiteConfig.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Lines returns the labeled settings lines in display order, skipping
// empty fields. A missing or unparseable file is an error; callers treat
// the augmentation as best-effort.
func (p *FileProvider) Lines() ([]string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.lines(), nil
}

func (s Settings) lines() []string {
	var out []string
	if s.AppDescriptionFA != "" {
		out = append(out, "App description (fa): "+s.AppDescriptionFA)
	}
	if s.AppDescriptionEN != "" {
		out = append(out, "App description (en): "+s.AppDescriptionEN)
	}
	if s.ContactEmail != "" {
		out = append(out, "Contact email: "+s.ContactEmail)
	}
	if s.ContactPhone != "" {
		out = append(out, "Contact phone: "+s.ContactPhone)
	}
	if s.AddressFA != "" {
		out = append(out, "Address (fa): "+s.AddressFA)
	}
	if s.AddressEN != "" {
		out = append(out, "Address (en): "+s.AddressEN)
	}
	return out
}
