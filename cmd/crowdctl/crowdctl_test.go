package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

func fixedSource(ctrl *gomock.Controller, count int) *domain.MockReadingSource {
	src := domain.NewMockReadingSource(ctrl)
	src.EXPECT().Read(gomock.Any(), gomock.Any()).Return(count, nil).AnyTimes()
	return src
}

func testViper() *viper.Viper {
	v := viper.New()
	v.Set("threshold-high", 260)
	v.Set("threshold-medium", 150)
	v.Set("reading-min", 40)
	v.Set("reading-max", 350)
	v.Set("feed-size", 6)
	v.Set("notifications", true)
	return v
}

func TestBuildService_RejectsInvertedThresholds(t *testing.T) {
	v := testViper()
	v.Set("threshold-medium", 300)

	if _, err := buildService(v, nil); err == nil {
		t.Fatal("expected error for medium >= high")
	}
}

func TestPrintSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := buildService(testViper(), fixedSource(ctrl, 300))
	if err != nil {
		t.Fatalf("buildService() error: %v", err)
	}

	snapshot, err := svc.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle() error: %v", err)
	}

	var buf bytes.Buffer
	if err := printSnapshot(&buf, snapshot); err != nil {
		t.Fatalf("printSnapshot() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ZONE", "Main Gate", "High Traffic", "Campus Alert Level: 10 zones affected", "Total people: 3000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportCycles_WritesJSONLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := buildService(testViper(), fixedSource(ctrl, 100))
	if err != nil {
		t.Fatalf("buildService() error: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetErr(&bytes.Buffer{})

	var out bytes.Buffer
	if err := exportCycles(cmd, svc, 3, &out); err != nil {
		t.Fatalf("exportCycles() error: %v", err)
	}

	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ids := make(map[string]bool)
	for scanner.Scan() {
		var snapshot domain.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snapshot); err != nil {
			t.Fatalf("line is not a snapshot: %v", err)
		}
		ids[snapshot.CycleID] = true
	}
	if len(ids) != 3 {
		t.Errorf("exported %d distinct cycles, want 3", len(ids))
	}
}

func TestRootCmd_RunCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--seed", "7", "--cycles", "2"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := strings.Count(out.String(), "ZONE"); got != 2 {
		t.Errorf("printed %d tables, want 2", got)
	}
}
