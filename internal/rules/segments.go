package rules

// Segment groups grade/track combinations that share one exam format and one
// discount-breakpoint table.
type Segment string

// Exam segments.
const (
	// SegmentEFAI covers 1º–5º ano (10-question exam, 5 per subject).
	SegmentEFAI Segment = "EFAI"
	// SegmentEFAF covers 6º–8º ano (24-question exam, 12 per subject).
	SegmentEFAF Segment = "EFAF"
	// SegmentEFIM covers 9º ano, ensino médio and the prep-course cluster
	// (24-question exam, 12 per subject).
	SegmentEFIM Segment = "EFIM"
)

// classTracks maps each "class of interest" label offered on the exam form to
// its tuition track. Labels not present here are unmapped and resolve to the
// zero-discount default.
var classTracks = map[string]string{
	"1ª série IME ITA Jr":             "1ª e 2ª Série EM Militar",
	"1ª série do EM - Militar":        "1ª e 2ª Série EM Militar",
	"1ª série do EM - Pré-Vestibular": "1ª e 2ª Série EM Vestibular",
	"1º ano do EF1":                   "1º ao 5º Ano",
	"2ª série IME ITA Jr":             "1ª e 2ª Série EM Militar",
	"2ª série do EM - Militar":        "1ª e 2ª Série EM Militar",
	"2ª série do EM - Pré-Vestibular": "1ª e 2ª Série EM Vestibular",
	"2º ano do EF1":                   "1º ao 5º Ano",
	"3ª série do EM - AFA EN EFOMM":   "3ª Série (PV/PM)",
	"3ª série do EM - ESA":            "3ª Série (PV/PM)",
	"3ª série do EM - EsPCEx":         "3ª Série (PV/PM)",
	"3ª série do EM - IME ITA":        "3ª Série (PV/PM)",
	"3ª série do EM - Medicina":       "3ª Série EM Medicina",
	"3ª série do EM - Pré-Vestibular": "3ª Série (PV/PM)",
	"3º ano do EF1":                   "1º ao 5º Ano",
	"4º ano do EF1":                   "1º ao 5º Ano",
	"5º ano do EF1":                   "1º ao 5º Ano",
	"6º ano do EF2":                   "6º ao 8º Ano",
	"7º ano do EF2":                   "6º ao 8º Ano",
	"8º ano do EF2":                   "6º ao 8º Ano",
	"9º ano do EF2 - Militar":         "9º Ano EF II Militar",
	"9º ano do EF2 - Vestibular":      "9º Ano EF II Vestibular",
	"Pré-Militar AFA EN EFOMM":        "AFA/EN/EFOMM",
	"Pré-Militar CN EPCAr":            "CN/EPCAr",
	"Pré-Militar ESA":                 "ESA",
	"Pré-Militar EsPCEx":              "EsPCEx",
	"Pré-Militar IME ITA":             "IME/ITA",
	"Pré-Vestibular":                  "Pré-Vestibular",
	"Pré-Vestibular - Medicina":       "Medicina (Pré)",
}

// trackSegments maps each tuition track to its exam segment.
var trackSegments = map[string]Segment{
	"1º ao 5º Ano":                SegmentEFAI,
	"6º ao 8º Ano":                SegmentEFAF,
	"9º Ano EF II Militar":        SegmentEFIM,
	"9º Ano EF II Vestibular":     SegmentEFIM,
	"1ª e 2ª Série EM Militar":    SegmentEFIM,
	"1ª e 2ª Série EM Vestibular": SegmentEFIM,
	"3ª Série (PV/PM)":            SegmentEFIM,
	"3ª Série EM Medicina":        SegmentEFIM,
	"AFA/EN/EFOMM":                SegmentEFIM,
	"CN/EPCAr":                    SegmentEFIM,
	"ESA":                         SegmentEFIM,
	"EsPCEx":                      SegmentEFIM,
	"IME/ITA":                     SegmentEFIM,
	"Medicina (Pré)":              SegmentEFIM,
	"Pré-Vestibular":              SegmentEFIM,
}

// TrackForClass maps a class-of-interest label to its tuition track.
func TrackForClass(classOfInterest string) (string, bool) {
	track, ok := classTracks[classOfInterest]
	return track, ok
}

// SegmentForTrack maps a tuition track to its exam segment.
func SegmentForTrack(track string) (Segment, bool) {
	seg, ok := trackSegments[track]
	return seg, ok
}

// SegmentForClass maps a class-of-interest label straight to its segment.
func SegmentForClass(classOfInterest string) (Segment, bool) {
	track, ok := classTracks[classOfInterest]
	if !ok {
		return "", false
	}
	return SegmentForTrack(track)
}

// ClassForTrack returns the alphabetically first class-of-interest label that
// maps onto the given tuition track, or "" if none does. Used to prefill the
// registration form from sources that only carry tracks.
func ClassForTrack(track string) string {
	best := ""
	for label, t := range classTracks {
		if t != track {
			continue
		}
		if best == "" || label < best {
			best = label
		}
	}
	return best
}

// ClassesOfInterest returns all known class-of-interest labels.
func ClassesOfInterest() []string {
	labels := make([]string, 0, len(classTracks))
	for label := range classTracks {
		labels = append(labels, label)
	}
	return labels
}

// MaxScore returns the highest total correct-answer count for a segment.
func MaxScore(seg Segment) int {
	if seg == SegmentEFAI {
		return 10
	}
	return 24
}

// MaxSubjectScore returns the per-subject cap (math or language) for a
// segment, used by input validation.
func MaxSubjectScore(seg Segment) int {
	if seg == SegmentEFAI {
		return 5
	}
	return 12
}
