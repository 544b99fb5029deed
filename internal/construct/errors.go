package construct

import "errors"

// ErrInitialPoseNotFound names the case where no candidate start produces a
// complete, valid assignment within the node-expansion and time budgets.
// DFSPoints and DFSEdges report that case as Result.Found == false and do
// not return this error.
var ErrInitialPoseNotFound = errors.New("construct: no initial pose found within budget")
