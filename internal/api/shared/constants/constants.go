package constants

const (
	// MAX_NFT_PAGE_SIZE caps NFT listings
	MAX_NFT_PAGE_SIZE = 20
	// MAX_LIST_PAGE_SIZE caps history and category listings
	MAX_LIST_PAGE_SIZE = 100
)
