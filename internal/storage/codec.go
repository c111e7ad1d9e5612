package storage

import (
	"encoding/json"
	"errors"

	"neuromorph/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// Stamp fills a record's version fields for persistence.
func Stamp() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func EncodeProcessingRun(r model.ProcessingRun) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeProcessingRun(data []byte) (model.ProcessingRun, error) {
	var run model.ProcessingRun
	if err := json.Unmarshal(data, &run); err != nil {
		return model.ProcessingRun{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.ProcessingRun{}, err
	}
	return run, nil
}

func EncodeSchedulingRun(r model.SchedulingRun) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeSchedulingRun(data []byte) (model.SchedulingRun, error) {
	var run model.SchedulingRun
	if err := json.Unmarshal(data, &run); err != nil {
		return model.SchedulingRun{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.SchedulingRun{}, err
	}
	return run, nil
}

func EncodeEnergyReport(r model.EnergyReport) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeEnergyReport(data []byte) (model.EnergyReport, error) {
	var report model.EnergyReport
	if err := json.Unmarshal(data, &report); err != nil {
		return model.EnergyReport{}, err
	}
	if err := checkVersion(report.VersionedRecord); err != nil {
		return model.EnergyReport{}, err
	}
	return report, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
