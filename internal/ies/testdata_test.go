package ies

import "strings"

// One fixture per revision. Values are chosen so scaled candelas are easy
// to check by hand.

const fixture2002 = `IESNA:LM-63-2002
[TEST] ABC1234
[TESTLAB] ACME Photometrics
[ISSUEDATE] 2004-05-06
[MANUFAC] Example Lighting
[LUMINAIRE] Recessed downlight
[MORE] with clear lens
TILT=NONE
1 1000 1 2 2 1 2 0.5 0.5 0.1
1 1 50
0 90
0 90
10 20
30 40
`

// Multiplier 2 and ballast 0.9 scale the grid by 1.8. The candelas wrap
// onto a second line.
const fixture1995 = `IESNA:LM-63-1995
[TEST] 95-001
[MANUFAC] Example Lighting
TILT=INCLUDE
1
3
0 45 90
1.0 0.9 0.8
2 500 2 3 1 1 1 1.2 0.4 0
0.9 1 60
0 45 90
0
100 200
300
`

const fixture1991 = `IESNA91
[TEST] 91-7
[DATE] 1991
[DATE] revised 1993
[OTHER] first line
second line
TILT=lamp.tlt
1 -1 1 3 2 2 1 1 1 0
1 1 100
-90 0 90
0 90
1 2 3
4 5 6
`

const fixture1986 = `TEST 1234 DATE: 01/02/86
MANUFAC: Acme
LUMCAT: X-1
long description
TILT=NONE
1 1500 1 2 1 1 1 0 0 0
1 1 75
0 180
0
500 250
`

// crlf rewrites a fixture with DOS line endings.
func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}
