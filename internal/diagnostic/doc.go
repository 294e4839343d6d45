// Package diagnostic provides structured warnings and errors collected while
// normalizing a build matrix.
//
// Key capabilities:
//   - Keys dropped by the override-axis suffix filter without being a
//     recognized defaults or override key
//   - Override values that are not lists, reported per row
//   - Per-entry attribution ("linux/Debug") for every message
package diagnostic
