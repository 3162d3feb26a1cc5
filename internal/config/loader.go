package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the structure of config.yaml
type FileConfig struct {
	Commerce struct {
		CatalogPath string `yaml:"catalog_path"`
		OrdersFile  string `yaml:"orders_file"`
		MaxShown    int    `yaml:"max_shown"`
	} `yaml:"commerce"`
	SDR struct {
		FAQPath   string `yaml:"faq_path"`
		LeadsFile string `yaml:"leads_file"`
	} `yaml:"sdr"`
	Wellness struct {
		LogFile string `yaml:"log_file"`
	} `yaml:"wellness"`
	Barista struct {
		OrdersDir string `yaml:"orders_dir"`
	} `yaml:"barista"`
	Tutor struct {
		ContentPath string `yaml:"content_path"`
	} `yaml:"tutor"`
}

// LoadFile loads configuration from a YAML file.
func LoadFile(filepath string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config FileConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing YAML: %v", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Defaults returns a FileConfig with every path set to its default value, used
// when no config.yaml is present.
func Defaults() *FileConfig {
	var config FileConfig
	config.applyDefaults()
	return &config
}

func (c *FileConfig) applyDefaults() {
	if c.Commerce.CatalogPath == "" {
		c.Commerce.CatalogPath = "data/catalog.json"
	}
	if c.Commerce.OrdersFile == "" {
		c.Commerce.OrdersFile = "data/ecommerce_orders.json"
	}
	if c.Commerce.MaxShown <= 0 {
		c.Commerce.MaxShown = 5
	}
	if c.SDR.FAQPath == "" {
		c.SDR.FAQPath = "data/company_faq.json"
	}
	if c.SDR.LeadsFile == "" {
		c.SDR.LeadsFile = "output/leads.json"
	}
	if c.Wellness.LogFile == "" {
		c.Wellness.LogFile = "data/wellness_log.json"
	}
	if c.Barista.OrdersDir == "" {
		c.Barista.OrdersDir = "orders"
	}
	if c.Tutor.ContentPath == "" {
		c.Tutor.ContentPath = "data/course_content.json"
	}
}
