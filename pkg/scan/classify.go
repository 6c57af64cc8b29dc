package scan

// archiveTemplate matches the rotated log names the game writes when it
// starts a new session, e.g. 2023-10-05-1.log.gz. 'n' slots are decimal
// digits; everything else is literal, with nothing allowed after.
const archiveTemplate = "nnnn-nn-nn-n.log.gz"

// IsArchivedLog reports whether name looks like a rotated, gzipped log.
// Purely a name check; the file's content is never inspected.
func IsArchivedLog(name string) bool {
	if len(name) != len(archiveTemplate) {
		return false
	}
	for i := 0; i < len(archiveTemplate); i++ {
		if archiveTemplate[i] == 'n' {
			if name[i] < '0' || name[i] > '9' {
				return false
			}
		} else if name[i] != archiveTemplate[i] {
			return false
		}
	}
	return true
}
