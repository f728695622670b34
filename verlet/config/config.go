// Package config lets a host describe a verlet.Parameters value as
// YAML data, the natural complement to the teacher's own use of
// gopkg.in/yaml.v2 for scene/animation asset deserialization.
package config

import (
	"fmt"
	"os"

	"github.com/physkit/verletsim/vecn"
	"github.com/physkit/verletsim/verlet"
	"gopkg.in/yaml.v2"
)

// Document is the YAML-serializable shape of a Parameters value.
// verlet.Parameters keeps its fields unexported (plain aggregate, but
// not a public wire format), so Document is the exported DTO that
// actually crosses the YAML boundary.
type Document struct {
	TimeStep                 float32   `yaml:"timeStep"`
	Drag                     float32   `yaml:"drag"`
	NumIterations            int       `yaml:"numIterations"`
	CollisionEnabled         bool      `yaml:"collisionEnabled"`
	Gravity                  []float32 `yaml:"gravity,omitempty"`
	WorldMin                 []float32 `yaml:"worldMin,omitempty"`
	WorldMax                 []float32 `yaml:"worldMax,omitempty"`
	SectorCount              []float32 `yaml:"sectorCount,omitempty"`
	ParticleCapacity         int       `yaml:"particleCapacity,omitempty"`
	CustomConstraintCapacity int       `yaml:"customConstraintCapacity,omitempty"`
	SpringCapacity           int       `yaml:"springCapacity,omitempty"`
	AttractionCapacity       int       `yaml:"attractionCapacity,omitempty"`
}

// FromParameters builds a Document from a live Parameters value.
func FromParameters[V vecn.Vector[V]](p *verlet.Parameters[V]) Document {
	doc := Document{
		TimeStep:         p.TimeStep(),
		Drag:             p.Drag(),
		NumIterations:    p.NumIterations(),
		CollisionEnabled: p.IsCollisionEnabled(),
	}
	if p.DoGravity() {
		doc.Gravity = componentsOf(p.Gravity())
	}
	if p.DoWorldEdges() {
		doc.WorldMin = componentsOf(p.WorldMin())
		doc.WorldMax = componentsOf(p.WorldMax())
	}
	doc.SectorCount = componentsOf(p.SectorCount())
	return doc
}

// Apply writes the document's settings into an existing World. Vector
// fields whose length doesn't match V's dimension are skipped: the
// caller asked for a DIM that doesn't match this document.
func Apply[V vecn.Vector[V]](doc Document, w *verlet.World[V]) {
	w.SetTimeStep(doc.TimeStep).
		SetDrag(doc.Drag).
		SetNumIterations(doc.NumIterations)

	if doc.CollisionEnabled {
		w.EnableCollision()
	} else {
		w.DisableCollision()
	}

	if v, ok := vectorFrom[V](doc.Gravity); ok {
		w.SetGravityVector(v)
	}
	if minV, ok := vectorFrom[V](doc.WorldMin); ok {
		if maxV, ok := vectorFrom[V](doc.WorldMax); ok {
			w.SetWorldBounds(minV, maxV)
		}
	}
	if v, ok := vectorFrom[V](doc.SectorCount); ok {
		w.SetSectorCountPerAxis(v)
	}
	if doc.ParticleCapacity > 0 {
		w.SetParticleCapacity(doc.ParticleCapacity)
	}
	if doc.CustomConstraintCapacity > 0 {
		w.SetCustomConstraintCapacity(doc.CustomConstraintCapacity)
	}
	if doc.SpringCapacity > 0 {
		w.SetSpringCapacity(doc.SpringCapacity)
	}
	if doc.AttractionCapacity > 0 {
		w.SetAttractionCapacity(doc.AttractionCapacity)
	}
}

func componentsOf[V vecn.Vector[V]](v V) []float32 {
	out := make([]float32, v.Dim())
	for i := range out {
		out[i] = v.Component(i)
	}
	return out
}

func vectorFrom[V vecn.Vector[V]](components []float32) (V, bool) {
	var v V
	if len(components) != v.Dim() {
		return v, false
	}
	for i, c := range components {
		v = v.SetComponent(i, c)
	}
	return v, true
}

// Load reads and parses a YAML document from path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return doc, nil
}

// Save marshals doc as YAML and writes it to path.
func Save(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: marshaling document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
