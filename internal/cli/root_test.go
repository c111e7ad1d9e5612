package cli

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestProcessCommandPrintsSummary(t *testing.T) {
	out := execute(t, "process", "--pattern-size", "16", "--seed", "42")

	for _, field := range []string{"run:", "output:", "spikes:", "efficiency:", "energy:"} {
		if !strings.Contains(out, field) {
			t.Fatalf("output missing %q:\n%s", field, out)
		}
	}
}

func TestScheduleCommandPrintsPlan(t *testing.T) {
	out := execute(t, "schedule",
		"--workload", "consciousness computation",
		"--workload", "emotional processing")

	if !strings.Contains(out, "consciousness_aware_edf") {
		t.Fatalf("output missing policy:\n%s", out)
	}
	if !strings.Contains(out, "consciousness_processing") {
		t.Fatalf("output missing scheduled task:\n%s", out)
	}
}

func TestOptimizeCommandPrintsSavings(t *testing.T) {
	out := execute(t, "optimize", "--budget", "0.001")

	if !strings.Contains(out, "savings:") || !strings.Contains(out, "power:") {
		t.Fatalf("output missing measurement fields:\n%s", out)
	}
	if !strings.Contains(out, "spike_suppression") {
		t.Fatalf("expected strategies over a tiny budget:\n%s", out)
	}
}

func TestRunsCommandEmptyStore(t *testing.T) {
	out := execute(t, "runs")
	if !strings.Contains(out, "no runs recorded") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
