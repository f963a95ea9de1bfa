package domain

import "strings"

// NoSerieID is the series id the ledger assigns to NFTs minted outside of a series
const NoSerieID = "0"

// UncategorizedCode is the category code a client sends to ask for NFTs without any category
const UncategorizedCode = "none"

// HasSerie reports whether the serie id designates a real series
func HasSerie(serieID string) bool {
	return serieID != "" && serieID != NoSerieID
}

// SubjectKind represents the kind of entity a view event is recorded against
type SubjectKind string

const (
	SubjectKindNFT   SubjectKind = "nft"
	SubjectKindSerie SubjectKind = "serie"
	SubjectKindUser  SubjectKind = "user"
)

// Valid checks if a subject kind is valid
func (k SubjectKind) Valid() bool {
	return k == SubjectKindNFT || k == SubjectKindSerie || k == SubjectKindUser
}

// ViewSubject identifies the entity whose views are counted
type ViewSubject struct {
	Kind SubjectKind
	ID   string
}

// SubjectForNFT returns the view subject of an NFT.
// NFTs that belong to a series share the series counter.
func SubjectForNFT(nftID, serieID string) ViewSubject {
	if HasSerie(serieID) {
		return ViewSubject{Kind: SubjectKindSerie, ID: serieID}
	}
	return ViewSubject{Kind: SubjectKindNFT, ID: nftID}
}

// SubjectForUser returns the view subject of a user profile
func SubjectForUser(walletID string) ViewSubject {
	return ViewSubject{Kind: SubjectKindUser, ID: walletID}
}

// Valid checks if the subject is complete
func (s ViewSubject) Valid() bool {
	return s.Kind.Valid() && strings.TrimSpace(s.ID) != ""
}

func (s ViewSubject) String() string {
	return string(s.Kind) + ":" + s.ID
}

// ProfileSummary is the short user profile attached to catalog records
type ProfileSummary struct {
	WalletID string  `json:"walletId"`
	Name     *string `json:"name,omitempty"`
	Verified *bool   `json:"verified,omitempty"`
}
