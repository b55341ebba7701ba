package models

import (
	"encoding/json"
	"fmt"
)

// proposalSchemaVersion guards the serialized chapter snapshot format.
// Bump it together with ChapterSnapshot when the shape changes.
const proposalSchemaVersion = 1

// ChapterSnapshot is one proposed chapter inside a pending edit. Snapshots
// carry no identity: approved chapters are always inserted as new rows.
type ChapterSnapshot struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

type chapterProposalEnvelope struct {
	Version  int               `json:"version"`
	Chapters []ChapterSnapshot `json:"chapters"`
}

// EncodeChapterProposal serializes the validated chapter list for storage
// on a pending edit.
func EncodeChapterProposal(chapters []ChapterSnapshot) ([]byte, error) {
	env := chapterProposalEnvelope{
		Version:  proposalSchemaVersion,
		Chapters: chapters,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, ErrorInternalServer{Message: fmt.Sprintf("encoding chapter proposal: %v", err)}
	}
	return data, nil
}

// DecodeChapterProposal parses a stored proposal snapshot. Any parse
// failure or unknown schema version is an ErrorCorruptProposal: the caller
// must surface it and leave the pending edit untouched rather than degrade
// to an empty chapter list.
func DecodeChapterProposal(data []byte) ([]ChapterSnapshot, error) {
	if len(data) == 0 {
		return nil, ErrorCorruptProposal{Message: "chapter proposal is empty"}
	}

	var env chapterProposalEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrorCorruptProposal{Message: fmt.Sprintf("chapter proposal does not parse: %v", err)}
	}

	if env.Version != proposalSchemaVersion {
		return nil, ErrorCorruptProposal{Message: fmt.Sprintf("unsupported proposal schema version %d", env.Version)}
	}

	if env.Chapters == nil {
		return nil, ErrorCorruptProposal{Message: "chapter proposal has no chapter list"}
	}

	return env.Chapters, nil
}

// SnapshotChapters converts live chapters to proposal snapshots, keeping
// their order indices.
func SnapshotChapters(chapters []Chapter) []ChapterSnapshot {
	snaps := make([]ChapterSnapshot, 0, len(chapters))
	for _, ch := range chapters {
		snaps = append(snaps, ChapterSnapshot{
			Title:      ch.Title,
			Content:    ch.Content,
			OrderIndex: ch.OrderIndex,
		})
	}
	return snaps
}
