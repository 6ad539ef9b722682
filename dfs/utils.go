// SPDX-License-Identifier: MIT

package dfs

import "strings"

// JoinSig joins a cycle with commas into its signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm. The input is not modified.
//
// Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}
