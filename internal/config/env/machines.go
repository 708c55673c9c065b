package env

import (
	"fmt"
	"os"
	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"sort"

	"gopkg.in/yaml.v3"
)

const machinesPathEnvName = "MACHINES_CONFIG"

const defaultMachinesPath = "configs/machines.yaml"

type machinesFile struct {
	Machines []model.MachineConfig `yaml:"machines"`
}

type machineRegistry struct {
	machines map[string]model.MachineConfig
	order    []string
}

// NewMachineRegistryFromYAML - читает реестр автоматов из файла MACHINES_CONFIG
func NewMachineRegistryFromYAML() (config.MachineRegistry, error) {
	path := os.Getenv(machinesPathEnvName)
	if len(path) == 0 {
		path = defaultMachinesPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read machines config: %w", err)
	}

	return ParseMachineRegistry(data)
}

// ParseMachineRegistry - разбирает и проверяет YAML с автоматами
func ParseMachineRegistry(data []byte) (config.MachineRegistry, error) {
	var file machinesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse machines config: %w", err)
	}

	return NewMachineRegistry(file.Machines)
}

// NewMachineRegistry - собирает реестр из готовых конфигураций
func NewMachineRegistry(machines []model.MachineConfig) (config.MachineRegistry, error) {
	if len(machines) == 0 {
		return nil, fmt.Errorf("no machines configured")
	}

	reg := &machineRegistry{
		machines: make(map[string]model.MachineConfig, len(machines)),
	}
	for _, m := range machines {
		if err := m.Normalize(); err != nil {
			return nil, err
		}
		if _, ok := reg.machines[m.Type]; ok {
			return nil, fmt.Errorf("duplicate machine type %s", m.Type)
		}
		reg.machines[m.Type] = m
		reg.order = append(reg.order, m.Type)
	}
	sort.Strings(reg.order)

	return reg, nil
}

func (r *machineRegistry) Get(machineType string) (model.MachineConfig, bool) {
	m, ok := r.machines[machineType]
	return m, ok
}

func (r *machineRegistry) List() []model.MachineConfig {
	res := make([]model.MachineConfig, 0, len(r.order))
	for _, t := range r.order {
		res = append(res, r.machines[t])
	}
	return res
}
