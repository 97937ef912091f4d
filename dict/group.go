package dict

// GroupSpec describes one repeating group.
//
// CountTag is the No* tag whose value declares how many instances follow.
// DelimiterTag is the first tag of every instance; its reappearance marks the
// start of the next instance. MemberTags lists every tag that may appear
// inside an instance, including the delimiter tag; the segmentation engine
// does not consult it, but dictionary consumers (pretty-printers, schema
// checkers) do.
type GroupSpec struct {
	Name         string
	CountTag     uint32
	DelimiterTag uint32
	MemberTags   []uint32
}

// FIX 4.2 built-in group specs.
// Source: https://www.onixs.biz/fix-dictionary/4.2/

var Allocs = &GroupSpec{
	Name:         "Allocs",
	CountTag:     NoAllocs,
	DelimiterTag: AllocAccount,
	MemberTags:   []uint32{AllocAccount, AllocShares, ProcessCode},
}

var Orders = &GroupSpec{
	Name:         "Orders",
	CountTag:     NoOrders,
	DelimiterTag: ClOrdID,
	MemberTags: []uint32{
		ClOrdID, ListSeqNo, WaveNo, Account, SettlmntTyp, FutSettDate,
		HandlInst, ExecInst, MinQty, MaxFloor, ExDestination, OpenClose,
		CoveredOrUncovered, CustomerOrFirm, MaxShow, Price, StopPx,
		PegDifference, DiscretionInst, DiscretionOffset, Currency,
		ComplianceID, SolicitedFlag, IOIID, TimeInForce, ExpireTime,
		Commission, Rule80A, ForexReq, SettlCurrency, OrderQty, CashOrderQty,
		OrdType, Side, LocateReqd, TransactTime, Symbol, SymbolSfx,
		SecurityID, IDSource, SecurityType, MaturityMonthYear, MaturityDay,
		PutOrCall, StrikePrice, OptAttribute, ContractMultiplier, CouponRate,
		SecurityExchange, Issuer, SecurityDesc, Text,
	},
}

var Rpts = &GroupSpec{
	Name:         "Rpts",
	CountTag:     NoRpts,
	DelimiterTag: RptSeq,
	MemberTags:   []uint32{RptSeq},
}

var DlvyInsts = &GroupSpec{
	Name:         "DlvyInst",
	CountTag:     NoDlvyInst,
	DelimiterTag: DlvyInst,
	MemberTags:   []uint32{DlvyInst},
}

var Execs = &GroupSpec{
	Name:         "Execs",
	CountTag:     NoExecs,
	DelimiterTag: ExecID,
	MemberTags:   []uint32{ExecID, LastShares, LastPx, LastCapacity},
}

var MiscFees = &GroupSpec{
	Name:         "MiscFees",
	CountTag:     NoMiscFees,
	DelimiterTag: MiscFeeAmt,
	MemberTags:   []uint32{MiscFeeAmt, MiscFeeCurr, MiscFeeType},
}

var RelatedSym = &GroupSpec{
	Name:         "RelatedSym",
	CountTag:     NoRelatedSym,
	DelimiterTag: RelatdSym,
	MemberTags: []uint32{
		RelatdSym, SymbolSfx, SecurityID, IDSource, SecurityType,
		MaturityMonthYear, MaturityDay, PutOrCall, StrikePrice, OptAttribute,
		ContractMultiplier, CouponRate, SecurityExchange, Issuer, SecurityDesc,
	},
}

var IOIQualifiers = &GroupSpec{
	Name:         "IOIQualifiers",
	CountTag:     NoIOIQualifiers,
	DelimiterTag: IOIQualifier,
	MemberTags:   []uint32{IOIQualifier},
}

var RoutingIDs = &GroupSpec{
	Name:         "RoutingIDs",
	CountTag:     NoRoutingIDs,
	DelimiterTag: RoutingType,
	MemberTags:   []uint32{RoutingType, RoutingID},
}

var MDEntryTypes = &GroupSpec{
	Name:         "MDEntryTypes",
	CountTag:     NoMDEntryTypes,
	DelimiterTag: MDEntryType,
	MemberTags:   []uint32{MDEntryType},
}

var MDEntries = &GroupSpec{
	Name:         "MDEntries",
	CountTag:     NoMDEntries,
	DelimiterTag: MDEntryType,
	MemberTags: []uint32{
		MDEntryType, MDEntryPx, MDEntrySize, MDEntryDate, MDEntryTime,
		TickDirection, MDMkt, QuoteCondition, TradeCondition, MDEntryID,
		MDUpdateAction, MDEntryRefID, MDEntryOriginator, LocationID, DeskID,
		OpenCloseSettleFlag, SellerDays, MDEntryBuyer, MDEntrySeller,
		MDEntryPositionNo, FinancialStatus, CorporateAction,
	},
}

var QuoteEntries = &GroupSpec{
	Name:         "QuoteEntries",
	CountTag:     NoQuoteEntries,
	DelimiterTag: QuoteEntryID,
	MemberTags: []uint32{
		QuoteEntryID, Symbol, SymbolSfx, SecurityID, IDSource, SecurityType,
		MaturityMonthYear, MaturityDay, PutOrCall, StrikePrice, OptAttribute,
		ContractMultiplier, CouponRate, SecurityExchange, Issuer, SecurityDesc,
		BidPx, OfferPx, BidSize, OfferSize, ValidUntilTime, BidSpotRate,
		OfferSpotRate, BidForwardPoints, OfferForwardPoints, TransactTime,
		TradingSessionID, QuoteEntryRejectReason,
	},
}

var QuoteSets = &GroupSpec{
	Name:         "QuoteSets",
	CountTag:     NoQuoteSets,
	DelimiterTag: QuoteSetID,
	MemberTags: []uint32{
		QuoteSetID, UnderlyingSymbol, UnderlyingSymbolSfx,
		UnderlyingSecurityID, UnderlyingIDSource, UnderlyingSecurityType,
		UnderlyingMaturityMonthYear, UnderlyingMaturityDay,
		UnderlyingPutOrCall, UnderlyingStrikePrice, UnderlyingOptAttribute,
		UnderlyingCurrency, QuoteSetValidUntilTime, TotQuoteEntries,
		NoQuoteEntries,
	},
}

var ContraBrokers = &GroupSpec{
	Name:         "ContraBrokers",
	CountTag:     NoContraBrokers,
	DelimiterTag: ContraBroker,
	MemberTags:   []uint32{ContraBroker, ContraTrader, ContraTradeQty, ContraTradeTime},
}

var MsgTypes = &GroupSpec{
	Name:         "MsgTypes",
	CountTag:     NoMsgTypes,
	DelimiterTag: RefMsgType,
	MemberTags:   []uint32{RefMsgType, MsgDirection},
}

var TradingSessions = &GroupSpec{
	Name:         "TradingSessions",
	CountTag:     NoTradingSessions,
	DelimiterTag: TradingSessionID,
	MemberTags:   []uint32{TradingSessionID},
}

var BidDescriptors = &GroupSpec{
	Name:         "BidDescriptors",
	CountTag:     NoBidDescriptors,
	DelimiterTag: BidDescriptorType,
	MemberTags: []uint32{
		BidDescriptorType, BidDescriptor, SideValueInd, LiquidityValue,
		LiquidityNumSecurities, LiquidityPctLow, LiquidityPctHigh,
		EFPTrackingError, FairValue, OutsideIndexPct, ValueOfFutures,
	},
}

var BidComponents = &GroupSpec{
	Name:         "BidComponents",
	CountTag:     NoBidComponents,
	DelimiterTag: ClearingFirm,
	MemberTags: []uint32{
		ClearingFirm, ClearingAccount, LiquidityIndType, WtAverageLiquidity,
		ExchangeForPhysical, OutMainCntryUIndex, CrossPercent, ProgRptReqs,
		ProgPeriodInterval, IncTaxInd, NumBidders, TradeType, BasisPxType,
		Country, Side, Price, PriceType, FairValue,
	},
}

var Strikes = &GroupSpec{
	Name:         "Strikes",
	CountTag:     NoStrikes,
	DelimiterTag: Symbol,
	MemberTags: []uint32{
		Symbol, SymbolSfx, SecurityID, IDSource, SecurityType,
		MaturityMonthYear, MaturityDay, PutOrCall, StrikePrice, OptAttribute,
		ContractMultiplier, CouponRate, SecurityExchange, Issuer, SecurityDesc,
	},
}

// FIX 4.4 built-in group specs.
// Source: https://www.onixs.biz/fix-dictionary/4.4/

var PartyIDs = &GroupSpec{
	Name:         "PartyIDs",
	CountTag:     NoPartyIDs,
	DelimiterTag: PartyID,
	MemberTags:   []uint32{PartyID, PartyIDSource, PartyRole, PartySubID, NoPartySubIDs},
}

var SecurityAltIDs = &GroupSpec{
	Name:         "SecurityAltIDs",
	CountTag:     NoSecurityAltID,
	DelimiterTag: SecurityAltID,
	MemberTags:   []uint32{SecurityAltID, SecurityAltIDSource},
}

var UnderlyingSecurityAltIDs = &GroupSpec{
	Name:         "UnderlyingSecurityAltIDs",
	CountTag:     NoUnderlyingSecurityAltID,
	DelimiterTag: UnderlyingSecurityAltID,
	MemberTags:   []uint32{UnderlyingSecurityAltID, UnderlyingSecurityAltIDSource},
}

var RegistDtlsGrp = &GroupSpec{
	Name:         "RegistDtls",
	CountTag:     NoRegistDtls,
	DelimiterTag: MailingDtls,
	MemberTags: []uint32{
		MailingDtls, InvestorCountryOfResidence, MailingInst, RegistDtls,
		RegistEmail, DistribPercentage, RegistID, RegistTransType, OwnerType,
		NoDistribInsts, DistribPaymentMethod, CashDistribCurr,
		CashDistribAgentName, CashDistribAgentCode, CashDistribAgentAcctNumber,
		CashDistribPayRef, CashDistribAgentAcctName,
	},
}

var DistribInsts = &GroupSpec{
	Name:         "DistribInsts",
	CountTag:     NoDistribInsts,
	DelimiterTag: DistribPaymentMethod,
	MemberTags: []uint32{
		DistribPaymentMethod, DistribPercentage, CashDistribCurr,
		CashDistribAgentName, CashDistribAgentCode, CashDistribAgentAcctNumber,
		CashDistribPayRef, CashDistribAgentAcctName,
	},
}

var ContAmts = &GroupSpec{
	Name:         "ContAmts",
	CountTag:     NoContAmts,
	DelimiterTag: ContAmtType,
	MemberTags:   []uint32{ContAmtType, ContAmtValue, ContAmtCurr},
}

var NestedPartyIDs = &GroupSpec{
	Name:         "NestedPartyIDs",
	CountTag:     NoNestedPartyIDs,
	DelimiterTag: NestedPartyID,
	MemberTags:   []uint32{NestedPartyID, NestedPartyIDSource, NestedPartyRole, NestedPartySubID, NoNestedPartySubIDs},
}

var Sides = &GroupSpec{
	Name:         "Sides",
	CountTag:     NoSides,
	DelimiterTag: Side,
	MemberTags: []uint32{
		Side, OrderID, SecondaryOrderID, ClOrdID, SecondaryClOrdID, ListID,
		Account, AcctIDSource, AccountType, ProcessCode, OddLot,
		NoClearingInstructions, ClearingInstruction, ClearingFeeIndicator,
		TradeInputSource, TradeInputDevice, OrderInputDevice, Currency,
		ComplianceID, SolicitedFlag, OrderCapacity, OrderRestrictions,
		CustOrderCapacity, OrdType, ExecInst, TransBkdTime, TradingSessionID,
		TradingSessionSubID, Commission, CommType, CommCurrency, FundRenewWaiv,
		GrossTradeAmt, NumDaysInterest, ExDestination, AccruedInterestRate,
		AccruedInterestAmt, InterestAtMaturity, EndAccruedInterestAmt,
		StartCash, EndCash, NetMoney, SettlCurrAmt, SettlCurrency,
		SettlCurrFxRate, SettlCurrFxRateCalc, PositionEffect, Text,
		EncodedTextLen, EncodedText, SideMultiLegReportingType, NoContAmts,
		ContAmtType, ContAmtValue, ContAmtCurr, NoMiscFees, MiscFeeAmt,
		MiscFeeCurr, MiscFeeType, MiscFeeBasis, ExchangeRule,
		TradeAllocIndicator, PreallocMethod, AllocID, NoAllocs, AllocAccount,
		AllocAcctIDSource, AllocSettlCurrency, IndividualAllocID, AllocShares,
	},
}

var SecurityTypes = &GroupSpec{
	Name:         "SecurityTypes",
	CountTag:     NoSecurityTypes,
	DelimiterTag: SecurityType,
	MemberTags:   []uint32{SecurityType, Product, CFICode},
}

var AffectedOrders = &GroupSpec{
	Name:         "AffectedOrders",
	CountTag:     NoAffectedOrders,
	DelimiterTag: AffectedOrderID,
	MemberTags:   []uint32{AffectedOrderID, AffectedSecondaryOrderID},
}

var Legs = &GroupSpec{
	Name:         "Legs",
	CountTag:     NoLegs,
	DelimiterTag: LegSymbol,
	MemberTags: []uint32{
		LegSymbol, LegSymbolSfx, LegSecurityID, LegSecurityIDSource,
		NoLegSecurityAltID, LegSecurityAltID, LegSecurityAltIDSource,
		LegProduct, LegCFICode, LegSecurityType, LegMaturityMonthYear,
		LegMaturityDate, LegStrikePrice, LegOptAttribute,
		LegContractMultiplier, LegCouponRate, LegSecurityExchange, LegIssuer,
		EncodedLegIssuerLen, EncodedLegIssuer, LegSecurityDesc,
		EncodedLegSecurityDescLen, EncodedLegSecurityDesc, LegRatioQty,
		LegSide, LegCurrency, LegCountryOfIssue, LegStateOrProvinceOfIssue,
		LegLocaleOfIssue, LegInstrRegistry, LegDatedDate, LegPool,
		LegContractSettlMonth, LegInterestAccrualDate, LegQty, LegSwapType,
		NoLegStipulations, LegStipulationType, LegStipulationValue,
		LegPositionEffect, LegCoveredOrUncovered, LegPrice, LegSettlType,
		LegSettlDate, LegLastPx, LegRefID,
	},
}

var Underlyings = &GroupSpec{
	Name:         "Underlyings",
	CountTag:     NoUnderlyings,
	DelimiterTag: UnderlyingSymbol,
	MemberTags: []uint32{
		UnderlyingSymbol, UnderlyingSymbolSfx, UnderlyingSecurityID,
		UnderlyingIDSource, UnderlyingSecurityType,
		UnderlyingMaturityMonthYear, UnderlyingMaturityDate,
		UnderlyingPutOrCall, UnderlyingStrikePrice, UnderlyingOptAttribute,
		UnderlyingContractMultiplier, UnderlyingCouponRate,
		UnderlyingSecurityExchange, UnderlyingIssuer,
		EncodedUnderlyingIssuerLen, EncodedUnderlyingIssuer,
		UnderlyingSecurityDesc, EncodedUnderlyingSecurityDescLen,
		EncodedUnderlyingSecurityDesc, UnderlyingCouponPaymentDate,
		UnderlyingIssueDate, UnderlyingRepoCollateralSecurityType,
		UnderlyingRepurchaseTerm, UnderlyingRepurchaseRate, UnderlyingFactor,
		UnderlyingCreditRating, UnderlyingInstrRegistry,
		UnderlyingCountryOfIssue, UnderlyingStateOrProvinceOfIssue,
		UnderlyingLocaleOfIssue, UnderlyingRedemptionDate,
		UnderlyingStrikeCurrency, UnderlyingSecuritySubType,
		UnderlyingProduct, UnderlyingCFICode, UnderlyingCPProgram,
		UnderlyingCPRegType, UnderlyingLastPx, UnderlyingLastQty,
		UnderlyingQty, UnderlyingSettlPrice, UnderlyingSettlPriceType,
		UnderlyingDirtyPrice, UnderlyingEndPrice, UnderlyingStartValue,
		UnderlyingCurrentValue, UnderlyingEndValue,
		NoUnderlyingSecurityAltID, UnderlyingSecurityAltID,
		UnderlyingSecurityAltIDSource, UnderlyingStipType, UnderlyingStipValue,
	},
}

var Positions = &GroupSpec{
	Name:         "Positions",
	CountTag:     NoPositions,
	DelimiterTag: PosType,
	MemberTags:   []uint32{PosType, LongQty, ShortQty, PosQtyStatus},
}

var QuoteQualifiers = &GroupSpec{
	Name:         "QuoteQualifiers",
	CountTag:     NoQuoteQualifiers,
	DelimiterTag: QuoteQualifier,
	MemberTags:   []uint32{QuoteQualifier},
}

var PosAmts = &GroupSpec{
	Name:         "PosAmts",
	CountTag:     NoPosAmt,
	DelimiterTag: PosAmtType,
	MemberTags:   []uint32{PosAmtType, PosAmt},
}

var Nested2PartyIDs = &GroupSpec{
	Name:         "Nested2PartyIDs",
	CountTag:     NoNested2PartyIDs,
	DelimiterTag: Nested2PartyID,
	MemberTags:   []uint32{Nested2PartyID, Nested2PartyIDSource, Nested2PartyRole, Nested2PartySubID},
}

var TrdRegTimestamps = &GroupSpec{
	Name:         "TrdRegTimestamps",
	CountTag:     NoTrdRegTimestamps,
	DelimiterTag: TrdRegTimestamp,
	MemberTags:   []uint32{TrdRegTimestamp, TrdRegTimestampType, TrdRegTimestampOrigin},
}

var SettlInsts = &GroupSpec{
	Name:         "SettlInst",
	CountTag:     NoSettlInst,
	DelimiterTag: SettlInstID,
	MemberTags: []uint32{
		SettlInstID, SettlInstTransType, SettlInstRefID, SettlInstMode,
		SettlInstSource, SecurityID, Side, TransactTime, EffectiveTime,
	},
}

var SettlPartyIDs = &GroupSpec{
	Name:         "SettlPartyIDs",
	CountTag:     NoSettlPartyIDs,
	DelimiterTag: SettlPartyID,
	MemberTags:   []uint32{SettlPartyID, SettlPartyIDSource, SettlPartyRole, SettlPartySubID, SettlPartySubIDType},
}

var PartySubIDs = &GroupSpec{
	Name:         "PartySubIDs",
	CountTag:     NoPartySubIDs,
	DelimiterTag: PartySubID,
	MemberTags:   []uint32{PartySubID, PartySubIDType},
}

var NestedPartySubIDs = &GroupSpec{
	Name:         "NestedPartySubIDs",
	CountTag:     NoNestedPartySubIDs,
	DelimiterTag: NestedPartySubID,
	MemberTags:   []uint32{NestedPartySubID, NestedPartySubIDType},
}

var Nested2PartySubIDs = &GroupSpec{
	Name:         "Nested2PartySubIDs",
	CountTag:     NoNested2PartySubIDs,
	DelimiterTag: Nested2PartySubID,
	MemberTags:   []uint32{Nested2PartySubID, Nested2PartySubIDType},
}

var AltMDSources = &GroupSpec{
	Name:         "AltMDSources",
	CountTag:     NoAltMDSource,
	DelimiterTag: AltMDSourceID,
	MemberTags:   []uint32{AltMDSourceID},
}

var Capacities = &GroupSpec{
	Name:         "Capacities",
	CountTag:     NoCapacities,
	DelimiterTag: OrderCapacity,
	MemberTags:   []uint32{OrderCapacity, OrderCapacityQty},
}

var Events = &GroupSpec{
	Name:         "Events",
	CountTag:     NoEvents,
	DelimiterTag: EventType,
	MemberTags:   []uint32{EventType, EventDate, EventPx, EventText},
}

var InstrAttribs = &GroupSpec{
	Name:         "InstrAttrib",
	CountTag:     NoInstrAttrib,
	DelimiterTag: InstrAttribType,
	MemberTags:   []uint32{InstrAttribType, InstrAttribValue},
}

var UnderlyingStips = &GroupSpec{
	Name:         "UnderlyingStips",
	CountTag:     NoUnderlyingStips,
	DelimiterTag: UnderlyingStipType,
	MemberTags:   []uint32{UnderlyingStipType, UnderlyingStipValue},
}

var Trades = &GroupSpec{
	Name:         "Trades",
	CountTag:     NoTrades,
	DelimiterTag: TradeReportID,
	MemberTags:   []uint32{TradeReportID, SecondaryTradeReportID},
}

var CompIDs = &GroupSpec{
	Name:         "CompIDs",
	CountTag:     NoCompIDs,
	DelimiterTag: RefCompID,
	MemberTags:   []uint32{RefCompID, RefSubID, StatusValue, StatusText},
}

var CollInquiryQualifiers = &GroupSpec{
	Name:         "CollInquiryQualifiers",
	CountTag:     NoCollInquiryQualifier,
	DelimiterTag: CollInquiryQualifier,
	MemberTags:   []uint32{CollInquiryQualifier},
}

var Nested3PartyIDs = &GroupSpec{
	Name:         "Nested3PartyIDs",
	CountTag:     NoNested3PartyIDs,
	DelimiterTag: Nested3PartyID,
	MemberTags:   []uint32{Nested3PartyID, Nested3PartyIDSource, Nested3PartyRole, Nested3PartySubID, Nested3PartySubIDType},
}

var LegSecurityAltIDs = &GroupSpec{
	Name:         "LegSecurityAltIDs",
	CountTag:     NoLegSecurityAltID,
	DelimiterTag: LegSecurityAltID,
	MemberTags:   []uint32{LegSecurityAltID, LegSecurityAltIDSource},
}

var LegStipulations = &GroupSpec{
	Name:         "LegStipulations",
	CountTag:     NoLegStipulations,
	DelimiterTag: LegStipulationType,
	MemberTags:   []uint32{LegStipulationType, LegStipulationValue},
}

var LegAllocs = &GroupSpec{
	Name:         "LegAllocs",
	CountTag:     NoLegAllocs,
	DelimiterTag: LegAllocAccount,
	MemberTags:   []uint32{LegAllocAccount, LegIndividualAllocID, LegAllocQty, LegAllocAcctIDSource, LegSettlCurrency},
}

var Hops = &GroupSpec{
	Name:         "Hops",
	CountTag:     NoHops,
	DelimiterTag: HopCompID,
	MemberTags:   []uint32{HopCompID, HopSendingTime, HopRefID},
}

var ClearingInstructions = &GroupSpec{
	Name:         "ClearingInstructions",
	CountTag:     NoClearingInstructions,
	DelimiterTag: ClearingInstruction,
	MemberTags:   []uint32{ClearingInstruction},
}

// FIX42Groups lists every built-in FIX 4.2 group spec in dictionary order.
var FIX42Groups = []*GroupSpec{
	Allocs,
	Orders,
	Rpts,
	DlvyInsts,
	Execs,
	MiscFees,
	RelatedSym,
	IOIQualifiers,
	RoutingIDs,
	MDEntryTypes,
	MDEntries,
	QuoteEntries,
	QuoteSets,
	ContraBrokers,
	MsgTypes,
	TradingSessions,
	BidDescriptors,
	BidComponents,
	Strikes,
}

// FIX44Groups is a superset of FIX42Groups: all FIX 4.2 groups followed by
// the groups introduced in FIX 4.4, so this list alone covers every repeating
// group that can appear in a FIX 4.4 message.
var FIX44Groups = append(append([]*GroupSpec{}, FIX42Groups...),
	PartyIDs,
	SecurityAltIDs,
	UnderlyingSecurityAltIDs,
	RegistDtlsGrp,
	DistribInsts,
	ContAmts,
	NestedPartyIDs,
	Sides,
	SecurityTypes,
	AffectedOrders,
	Legs,
	Underlyings,
	Positions,
	QuoteQualifiers,
	PosAmts,
	Nested2PartyIDs,
	TrdRegTimestamps,
	SettlInsts,
	SettlPartyIDs,
	PartySubIDs,
	NestedPartySubIDs,
	Nested2PartySubIDs,
	AltMDSources,
	Capacities,
	Events,
	InstrAttribs,
	UnderlyingStips,
	Trades,
	CompIDs,
	CollInquiryQualifiers,
	Nested3PartyIDs,
	LegSecurityAltIDs,
	LegStipulations,
	LegAllocs,
	Hops,
	ClearingInstructions,
)
