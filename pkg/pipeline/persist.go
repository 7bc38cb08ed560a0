package pipeline

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
)

const artifactVersion = 1

type artifactRecord struct {
	Version     int
	FitID       string
	Numeric     groupRecord
	Categorical groupRecord
}

type groupRecord struct {
	Group  ColumnGroup
	Stages []stageRecord
	States []State
}

type stageRecord struct {
	Kind       StageKind
	Strategy   ImputeStrategy
	Categories []Vocabulary
}

// MarshalBinary implements encoding.BinaryMarshaler using gob. Only a fitted
// transformer can be marshaled.
func (ct *ColumnTransformer) MarshalBinary() ([]byte, error) {
	if ct.fitted == nil {
		return nil, errs.New(errs.NotFitted, "cannot serialize an unfitted transformer")
	}
	num, err := recordGroup(ct.numeric, ct.fitted.numeric)
	if err != nil {
		return nil, err
	}
	cat, err := recordGroup(ct.categorical, ct.fitted.categorical)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	rec := artifactRecord{Version: artifactVersion, FitID: ct.fitted.id, Numeric: num, Categorical: cat}
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, errs.Wrap(errs.SerializationFailure, fmt.Errorf("encode transformer: %w", err))
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver is
// replaced by the decoded, fitted transformer.
func (ct *ColumnTransformer) UnmarshalBinary(b []byte) error {
	var rec artifactRecord
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&rec); err != nil {
		return errs.Wrap(errs.SerializationFailure, fmt.Errorf("decode transformer: %w", err))
	}
	if rec.Version != artifactVersion {
		return errs.New(errs.SerializationFailure, "artifact version %d, want %d", rec.Version, artifactVersion)
	}
	num, err := restoreGroup(rec.Numeric)
	if err != nil {
		return err
	}
	cat, err := restoreGroup(rec.Categorical)
	if err != nil {
		return err
	}
	*ct = ColumnTransformer{
		numeric:     num,
		categorical: cat,
		fitted:      &fittedState{id: rec.FitID, numeric: rec.Numeric.States, categorical: rec.Categorical.States},
	}
	return nil
}

// Load decodes a transformer previously produced by MarshalBinary.
func Load(b []byte) (*ColumnTransformer, error) {
	ct := &ColumnTransformer{}
	if err := ct.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return ct, nil
}

func recordGroup(p *GroupPipeline, states []State) (groupRecord, error) {
	rec := groupRecord{Group: p.Group, States: states}
	for _, step := range p.Stages {
		switch s := step.(type) {
		case Imputer:
			rec.Stages = append(rec.Stages, stageRecord{Kind: ImputeStage, Strategy: s.Strategy})
		case Encoder:
			rec.Stages = append(rec.Stages, stageRecord{Kind: EncodeStage, Categories: s.Categories})
		case Scaler:
			rec.Stages = append(rec.Stages, stageRecord{Kind: ScaleStage})
		default:
			return groupRecord{}, errs.New(errs.SerializationFailure, "stage %T is not serializable", step).At(step.Name(), "")
		}
	}
	return rec, nil
}

func restoreGroup(rec groupRecord) (*GroupPipeline, error) {
	if len(rec.States) != len(rec.Stages) {
		return nil, errs.New(errs.SerializationFailure, "%s: %d states for %d stages", rec.Group.Name, len(rec.States), len(rec.Stages))
	}
	stages := make([]Stage, len(rec.Stages))
	for i, s := range rec.Stages {
		switch s.Kind {
		case ImputeStage:
			stages[i] = Imputer{Strategy: s.Strategy}
		case EncodeStage:
			stages[i] = Encoder{Categories: s.Categories}
		case ScaleStage:
			stages[i] = Scaler{}
		default:
			return nil, errs.New(errs.SerializationFailure, "%s: unknown stage kind %d", rec.Group.Name, s.Kind)
		}
	}
	return NewGroupPipeline(rec.Group, stages...), nil
}
