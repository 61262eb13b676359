package common

// IsInsufficientMaterial reports K v K, K+minor v K and K+B v K+B with
// both bishops on squares of one colour.
func (p *Position) IsInsufficientMaterial() bool {
	if p.Pieces[Pawn]|p.Pieces[Rook]|p.Pieces[Queen] != 0 {
		return false
	}
	var minors = p.Pieces[Knight] | p.Pieces[Bishop]
	if !MoreThanOne(minors) {
		return true
	}
	var bishops = p.Pieces[Bishop]
	if p.Pieces[Knight] != 0 || PopCount(bishops) != 2 || PopCount(bishops&p.Sides[SideWhite]) != 1 {
		return false
	}
	return IsDarkSquare(Lsb(bishops)) == IsDarkSquare(Msb(bishops))
}

// IsRepetitionOf compares the fields that define a repeated position:
// placement, side to move, castling rights and en passant square.
func (p *Position) IsRepetitionOf(other *Position) bool {
	return p.Key == other.Key &&
		p.Pieces == other.Pieces &&
		p.Sides == other.Sides &&
		p.WhiteMove == other.WhiteMove &&
		p.CastleRights == other.CastleRights &&
		p.EpSquare == other.EpSquare
}
