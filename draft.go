package jsonschemer

// draft captures the dialect differences the engine switches on. The drafts
// share every keyword except the identifier keyword, renamed from "id" to
// "$id" in draft-06, and the exclusive bounds, which are boolean modifiers of
// maximum/minimum in draft-04 and standalone numbers from draft-06 onward.
type draft struct {
	name              string
	idKeyword         string
	booleanExclusives bool
}

var (
	draft04 = draft{name: "draft-04", idKeyword: "id", booleanExclusives: true}
	draft06 = draft{name: "draft-06", idKeyword: "$id"}
	draft07 = draft{name: "draft-07", idKeyword: "$id"}
)
