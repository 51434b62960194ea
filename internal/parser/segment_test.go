package parser

import (
	"reflect"
	"testing"

	"github.com/quillbooks/statement-parser/internal/models"
)

func TestSegmentLines(t *testing.T) {
	slice := models.SectionSlice{
		Kind: models.SectionDeposits,
		Text: `DEPOSITS AND ADDITIONS
DATE DESCRIPTION AMOUNT

01/08 Remote Online Deposit 1 $3,640.00
  01/19 Remote Online Deposit 1 2,500.00
Total Deposits and Additions $6,140.00`,
	}

	got := SegmentLines(slice)
	want := []string{
		"01/08 Remote Online Deposit 1 $3,640.00",
		"01/19 Remote Online Deposit 1 2,500.00",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentLines:\ngot  %q\nwant %q", got, want)
	}
}

func TestSegmentLines_DropsTableHeader(t *testing.T) {
	slice := models.SectionSlice{
		Kind: models.SectionChecks,
		Text: "CHECKS PAID\nCHECK NO. DATE PAID DESCRIPTION AMOUNT\n538 * ^ 01/15 01/19 2,500.00\nTotal Checks Paid $2,500.00",
	}

	got := SegmentLines(slice)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(got), got)
	}
	if got[0] != "538 * ^ 01/15 01/19 2,500.00" {
		t.Errorf("got %q", got[0])
	}
}

func TestSegmentLines_PreservesOrderForLookahead(t *testing.T) {
	// The electronic parser needs the physical line order intact to scan
	// forward for standalone amounts.
	slice := models.SectionSlice{
		Kind: models.SectionElectronic,
		Text: `ELECTRONIC WITHDRAWALS
01/16 Orig CO Name:Home Depot Orig ID:1234567890
CO Entry Descr:Online Pmt
$389.20
Total Electronic Withdrawals $389.20`,
	}

	got := SegmentLines(slice)
	want := []string{
		"01/16 Orig CO Name:Home Depot Orig ID:1234567890",
		"CO Entry Descr:Online Pmt",
		"$389.20",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentLines:\ngot  %q\nwant %q", got, want)
	}
}

func TestSegmentLines_UnknownKind(t *testing.T) {
	got := SegmentLines(models.SectionSlice{Kind: "mystery", Text: "01/08 x 1.00"})
	if got != nil {
		t.Errorf("expected nil for unknown section kind, got %q", got)
	}
}
