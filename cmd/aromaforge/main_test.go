package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestComposeCommandIsDeterministic(t *testing.T) {
	composeDominant = "oriental"
	composeSecondary = "woody"
	composeAccent = "spicy"
	composeIdentifier = "OWS-001"
	composeConcentration = "extrait"
	composeOccasion = "evening"
	composeIntensity = "leave a trail"
	composeJSON = false
	overlayPath = ""

	render := func() string {
		cmd := &cobra.Command{}
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		if err := runCompose(cmd, nil); err != nil {
			t.Fatalf("runCompose() error = %v", err)
		}
		return buf.String()
	}

	first := render()
	second := render()
	if first != second {
		t.Fatal("expected identical output for repeated runs with the same parameters")
	}
	if !strings.Contains(first, "MATERIAL") {
		t.Fatalf("expected formula table in output: %s", first)
	}
	if !strings.Contains(first, " *") {
		t.Fatalf("expected hero marker in output: %s", first)
	}
}

func TestBatchCommandPrintsWeighOut(t *testing.T) {
	composeDominant = "fresh"
	composeSecondary = "citrus"
	composeAccent = "aquatic"
	composeIdentifier = "SUM-014"
	composeConcentration = "eau de toilette"
	composeOccasion = "summer daytime"
	composeIntensity = "subtle aura"
	batchVolumeML = 100
	overlayPath = ""

	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	if err := runBatch(cmd, nil); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Lot AF-") {
		t.Fatalf("expected lot number in output: %s", out)
	}
	if !strings.Contains(out, "Perfume oil") {
		t.Fatalf("expected oil total in output: %s", out)
	}
}

func TestParseDatasheet(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"ACME AROMATICS — SPRING CATALOGUE",
		"base Oud Muri 4.5% persistence 9 dominance 8 supplier Acme Aromatics",
		"heart Rose Supreme 2.0% persistence 6",
		"top Bergamot Extra 3.5%",
		"misc line without a layer 12%",
		"Page 3 of 12",
	}, "\n")

	materials, skipped := parseDatasheet(text)
	if len(materials) != 3 {
		t.Fatalf("parsed %d materials, want 3", len(materials))
	}
	if skipped != 1 {
		t.Fatalf("skipped %d lines, want 1", skipped)
	}

	oud := materials[0]
	if oud.Layer != "base" || oud.Material.Name != "Oud Muri" {
		t.Fatalf("unexpected first material: %+v", oud)
	}
	if oud.Material.Persistence != 9 || oud.Material.Dominance != 8 {
		t.Fatalf("expected parsed attributes, got %+v", oud.Material)
	}
	if oud.Material.Supplier != "Acme Aromatics" {
		t.Fatalf("expected supplier, got %q", oud.Material.Supplier)
	}
	if oud.Material.Low >= oud.Material.High {
		t.Fatalf("expected widened band, got %v–%v", oud.Material.Low, oud.Material.High)
	}

	rose := materials[1]
	if rose.Material.Persistence != 6 || rose.Material.Dominance != 5 {
		t.Fatalf("expected default dominance, got %+v", rose.Material)
	}
}
