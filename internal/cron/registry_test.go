package cron

import (
	"context"
	"testing"
)

type namedJob struct {
	name string
	ran  int
	err  error
}

func (j *namedJob) Name() string { return j.name }

func (j *namedJob) Run(context.Context) error {
	j.ran++
	return j.err
}

func TestRegistrySkipsNilJobs(t *testing.T) {
	first := &namedJob{name: "first"}
	second := &namedJob{name: "second"}

	registry := NewRegistry(first, nil, second)
	registry.Register(nil)

	jobs := registry.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Name() != "first" || jobs[1].Name() != "second" {
		t.Fatalf("expected registration order preserved, got %s then %s", jobs[0].Name(), jobs[1].Name())
	}
}

func TestRegistryJobsReturnsCopy(t *testing.T) {
	registry := NewRegistry(&namedJob{name: "only"})

	jobs := registry.Jobs()
	jobs[0] = nil

	if registry.Jobs()[0] == nil {
		t.Fatalf("mutating the returned slice must not affect the registry")
	}
}
