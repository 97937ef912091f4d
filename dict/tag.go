// Package dict holds the static FIX reference data consumed by the wire
// package: the flat tag namespace and the repeating-group dictionaries for
// FIX 4.2 and FIX 4.4. It is pure data with no behavior beyond loading
// user-defined dictionaries from TOML or JSON.
package dict

// Well-known session-level tags.
const (
	BeginString uint32 = 8  // also called the version-identifier field
	BodyLength  uint32 = 9
	CheckSum    uint32 = 10
	MsgType     uint32 = 35
	SenderCompID uint32 = 49
	TargetCompID uint32 = 56
	MsgSeqNum    uint32 = 34
	SendingTime  uint32 = 52
	Text         uint32 = 58
)

// BeginString values recognized when selecting a group dictionary.
const (
	VersionFIX42 = "FIX.4.2"
	VersionFIX44 = "FIX.4.4"
)

// FIX 4.2 tags referenced by the built-in group specs.
const (
	Account            uint32 = 1
	ClOrdID            uint32 = 11
	Commission         uint32 = 12
	CommType           uint32 = 13
	Currency           uint32 = 15
	ExecID             uint32 = 17
	ExecInst           uint32 = 18
	HandlInst          uint32 = 21
	IDSource           uint32 = 22
	IOIID              uint32 = 23
	LastCapacity       uint32 = 29
	LastPx             uint32 = 31
	LastShares         uint32 = 32
	OrderID            uint32 = 37
	OrderQty           uint32 = 38
	OrdType            uint32 = 40
	Price              uint32 = 44
	RelatdSym          uint32 = 46
	Rule80A            uint32 = 47
	SecurityID         uint32 = 48
	Side               uint32 = 54
	Symbol             uint32 = 55
	TimeInForce        uint32 = 59
	TransactTime       uint32 = 60
	ValidUntilTime     uint32 = 62
	SettlmntTyp        uint32 = 63
	FutSettDate        uint32 = 64
	SymbolSfx          uint32 = 65
	ListID             uint32 = 66
	ListSeqNo          uint32 = 67
	AllocID            uint32 = 70
	NoOrders           uint32 = 73
	OpenClose          uint32 = 77
	NoAllocs           uint32 = 78
	AllocAccount       uint32 = 79
	AllocShares        uint32 = 80
	ProcessCode        uint32 = 81
	NoRpts             uint32 = 82
	RptSeq             uint32 = 83
	NoDlvyInst         uint32 = 85
	DlvyInst           uint32 = 86
	StopPx             uint32 = 99
	ExDestination      uint32 = 100
	IOIQualifier       uint32 = 104
	WaveNo             uint32 = 105
	Issuer             uint32 = 106
	SecurityDesc       uint32 = 107
	MinQty             uint32 = 110
	MaxFloor           uint32 = 111
	LocateReqd         uint32 = 114
	NetMoney           uint32 = 118
	SettlCurrAmt       uint32 = 119
	SettlCurrency      uint32 = 120
	ForexReq           uint32 = 121
	NoExecs            uint32 = 124
	ExpireTime         uint32 = 126
	BidPx              uint32 = 132
	OfferPx            uint32 = 133
	BidSize            uint32 = 134
	OfferSize          uint32 = 135
	NoMiscFees         uint32 = 136
	MiscFeeAmt         uint32 = 137
	MiscFeeCurr        uint32 = 138
	MiscFeeType        uint32 = 139
	NoRelatedSym       uint32 = 146
	CashOrderQty       uint32 = 152
	SettlCurrFxRate    uint32 = 155
	SettlCurrFxRateCalc uint32 = 156
	NumDaysInterest    uint32 = 157
	AccruedInterestRate uint32 = 158
	AccruedInterestAmt uint32 = 159
	SettlInstMode      uint32 = 160
	SettlInstID        uint32 = 162
	SettlInstTransType uint32 = 163
	SettlInstSource    uint32 = 165
	SecurityType       uint32 = 167
	EffectiveTime      uint32 = 168
	BidSpotRate        uint32 = 188
	BidForwardPoints   uint32 = 189
	OfferSpotRate      uint32 = 190
	OfferForwardPoints uint32 = 191
	SecondaryOrderID   uint32 = 198
	NoIOIQualifiers    uint32 = 199
	MaturityMonthYear  uint32 = 200
	PutOrCall          uint32 = 201
	StrikePrice        uint32 = 202
	CoveredOrUncovered uint32 = 203
	CustomerOrFirm     uint32 = 204
	MaturityDay        uint32 = 205
	OptAttribute       uint32 = 206
	SecurityExchange   uint32 = 207
	MaxShow            uint32 = 210
	PegDifference      uint32 = 211
	SettlInstRefID     uint32 = 214
	NoRoutingIDs       uint32 = 215
	RoutingType        uint32 = 216
	RoutingID          uint32 = 217
	CouponRate         uint32 = 223
	ContractMultiplier uint32 = 231
	UnderlyingCouponPaymentDate uint32 = 241
	UnderlyingIssueDate         uint32 = 242
	UnderlyingRepoCollateralSecurityType uint32 = 243
	UnderlyingRepurchaseTerm uint32 = 244
	UnderlyingRepurchaseRate uint32 = 245
	UnderlyingFactor         uint32 = 246
	UnderlyingRedemptionDate uint32 = 247
	UnderlyingCreditRating   uint32 = 256
	NoMDEntryTypes     uint32 = 267
	NoMDEntries        uint32 = 268
	MDEntryType        uint32 = 269
	MDEntryPx          uint32 = 270
	MDEntrySize        uint32 = 271
	MDEntryDate        uint32 = 272
	MDEntryTime        uint32 = 273
	TickDirection      uint32 = 274
	MDMkt              uint32 = 275
	QuoteCondition     uint32 = 276
	TradeCondition     uint32 = 277
	MDEntryID          uint32 = 278
	MDUpdateAction     uint32 = 279
	MDEntryRefID       uint32 = 280
	MDEntryOriginator  uint32 = 282
	LocationID         uint32 = 283
	DeskID             uint32 = 284
	OpenCloseSettleFlag uint32 = 286
	SellerDays         uint32 = 287
	MDEntryBuyer       uint32 = 288
	MDEntrySeller      uint32 = 289
	MDEntryPositionNo  uint32 = 290
	FinancialStatus    uint32 = 291
	CorporateAction    uint32 = 292
	NoQuoteEntries     uint32 = 295
	NoQuoteSets        uint32 = 296
	QuoteEntryID       uint32 = 299
	QuoteSetID         uint32 = 302
	TotQuoteEntries    uint32 = 304
	UnderlyingIDSource uint32 = 305
	UnderlyingIssuer   uint32 = 306
	UnderlyingSecurityDesc uint32 = 307
	UnderlyingSecurityExchange uint32 = 308
	UnderlyingSecurityID   uint32 = 309
	UnderlyingSecurityType uint32 = 310
	UnderlyingSymbol       uint32 = 311
	UnderlyingSymbolSfx    uint32 = 312
	UnderlyingMaturityMonthYear uint32 = 313
	UnderlyingMaturityDay  uint32 = 314
	UnderlyingPutOrCall    uint32 = 315
	UnderlyingStrikePrice  uint32 = 316
	UnderlyingOptAttribute uint32 = 317
	UnderlyingCurrency     uint32 = 318
	TradingSessionID   uint32 = 336
	ContraTrader       uint32 = 337
	EncodedTextLen     uint32 = 354
	EncodedText        uint32 = 355
	EncodedUnderlyingIssuerLen uint32 = 362
	EncodedUnderlyingIssuer    uint32 = 363
	EncodedUnderlyingSecurityDescLen uint32 = 364
	EncodedUnderlyingSecurityDesc    uint32 = 365
	QuoteSetValidUntilTime uint32 = 367
	QuoteEntryRejectReason uint32 = 368
	RefMsgType         uint32 = 372
	ContraBroker       uint32 = 375
	ComplianceID       uint32 = 376
	SolicitedFlag      uint32 = 377
	GrossTradeAmt      uint32 = 381
	NoContraBrokers    uint32 = 382
	NoMsgTypes         uint32 = 384
	MsgDirection       uint32 = 385
	NoTradingSessions  uint32 = 386
	DiscretionInst     uint32 = 388
	DiscretionOffset   uint32 = 389
	NoBidDescriptors   uint32 = 398
	BidDescriptorType  uint32 = 399
	BidDescriptor      uint32 = 400
	SideValueInd       uint32 = 401
	LiquidityPctLow    uint32 = 402
	LiquidityPctHigh   uint32 = 403
	LiquidityValue     uint32 = 404
	EFPTrackingError   uint32 = 405
	FairValue          uint32 = 406
	OutsideIndexPct    uint32 = 407
	ValueOfFutures     uint32 = 408
	LiquidityIndType   uint32 = 409
	WtAverageLiquidity uint32 = 410
	ExchangeForPhysical uint32 = 411
	OutMainCntryUIndex uint32 = 412
	CrossPercent       uint32 = 413
	ProgRptReqs        uint32 = 414
	ProgPeriodInterval uint32 = 415
	IncTaxInd          uint32 = 416
	NumBidders         uint32 = 417
	TradeType          uint32 = 418
	BasisPxType        uint32 = 419
	NoBidComponents    uint32 = 420
	Country            uint32 = 421
	PriceType          uint32 = 423
	NoStrikes          uint32 = 428
	UnderlyingCouponRate         uint32 = 435
	UnderlyingContractMultiplier uint32 = 436
	ContraTradeQty     uint32 = 437
	ContraTradeTime    uint32 = 438
	ClearingFirm       uint32 = 439
	ClearingAccount    uint32 = 440
	LiquidityNumSecurities uint32 = 441
)

// FIX 4.4 tags referenced by the built-in group specs.
const (
	PartyIDSource      uint32 = 447
	PartyID            uint32 = 448
	PartyRole          uint32 = 452
	NoPartyIDs         uint32 = 453
	NoSecurityAltID    uint32 = 454
	SecurityAltID      uint32 = 455
	SecurityAltIDSource uint32 = 456
	NoUnderlyingSecurityAltID     uint32 = 457
	UnderlyingSecurityAltID       uint32 = 458
	UnderlyingSecurityAltIDSource uint32 = 459
	Product            uint32 = 460
	CFICode            uint32 = 461
	UnderlyingProduct  uint32 = 462
	UnderlyingCFICode  uint32 = 463
	IndividualAllocID  uint32 = 467
	NoRegistDtls       uint32 = 473
	MailingDtls        uint32 = 474
	InvestorCountryOfResidence uint32 = 475
	DistribPaymentMethod uint32 = 477
	CashDistribCurr    uint32 = 478
	CommCurrency       uint32 = 479
	MailingInst        uint32 = 482
	TransBkdTime       uint32 = 483
	FundRenewWaiv      uint32 = 497
	CashDistribAgentName       uint32 = 498
	CashDistribAgentCode       uint32 = 499
	CashDistribAgentAcctNumber uint32 = 500
	CashDistribPayRef          uint32 = 501
	CashDistribAgentAcctName   uint32 = 502
	RegistDtls         uint32 = 509
	NoDistribInsts     uint32 = 510
	RegistEmail        uint32 = 511
	DistribPercentage  uint32 = 512
	RegistID           uint32 = 513
	RegistTransType    uint32 = 514
	NoContAmts         uint32 = 518
	ContAmtType        uint32 = 519
	ContAmtValue       uint32 = 520
	ContAmtCurr        uint32 = 521
	OwnerType          uint32 = 522
	PartySubID         uint32 = 523
	NestedPartyID      uint32 = 524
	NestedPartyIDSource uint32 = 525
	SecondaryClOrdID   uint32 = 526
	OrderCapacity      uint32 = 528
	OrderRestrictions  uint32 = 529
	NoAffectedOrders   uint32 = 534
	AffectedOrderID    uint32 = 535
	AffectedSecondaryOrderID uint32 = 536
	NestedPartyRole    uint32 = 538
	NoNestedPartyIDs   uint32 = 539
	UnderlyingMaturityDate uint32 = 542
	NestedPartySubID   uint32 = 545
	NoSides            uint32 = 552
	NoLegs             uint32 = 555
	LegCurrency        uint32 = 556
	NoSecurityTypes    uint32 = 558
	LegPositionEffect  uint32 = 564
	LegCoveredOrUncovered uint32 = 565
	LegPrice           uint32 = 566
	TradeReportID      uint32 = 571
	OddLot             uint32 = 575
	NoClearingInstructions uint32 = 576
	ClearingInstruction uint32 = 577
	TradeInputSource   uint32 = 578
	TradeInputDevice   uint32 = 579
	AccountType        uint32 = 581
	CustOrderCapacity  uint32 = 582
	LegSettlType       uint32 = 587
	LegSettlDate       uint32 = 588
	PreallocMethod     uint32 = 591
	UnderlyingCountryOfIssue         uint32 = 592
	UnderlyingStateOrProvinceOfIssue uint32 = 593
	UnderlyingLocaleOfIssue          uint32 = 594
	UnderlyingInstrRegistry          uint32 = 595
	LegCountryOfIssue  uint32 = 596
	LegStateOrProvinceOfIssue uint32 = 597
	LegLocaleOfIssue   uint32 = 598
	LegInstrRegistry   uint32 = 599
	LegSymbol          uint32 = 600
	LegSymbolSfx       uint32 = 601
	LegSecurityID      uint32 = 602
	LegSecurityIDSource uint32 = 603
	NoLegSecurityAltID uint32 = 604
	LegSecurityAltID   uint32 = 605
	LegSecurityAltIDSource uint32 = 606
	LegProduct         uint32 = 607
	LegCFICode         uint32 = 608
	LegSecurityType    uint32 = 609
	LegMaturityMonthYear uint32 = 610
	LegMaturityDate    uint32 = 611
	LegStrikePrice     uint32 = 612
	LegOptAttribute    uint32 = 613
	LegContractMultiplier uint32 = 614
	LegCouponRate      uint32 = 615
	LegSecurityExchange uint32 = 616
	LegIssuer          uint32 = 617
	EncodedLegIssuerLen uint32 = 618
	EncodedLegIssuer   uint32 = 619
	LegSecurityDesc    uint32 = 620
	EncodedLegSecurityDescLen uint32 = 621
	EncodedLegSecurityDesc uint32 = 622
	LegRatioQty        uint32 = 623
	LegSide            uint32 = 624
	TradingSessionSubID uint32 = 625
	NoHops             uint32 = 627
	HopCompID          uint32 = 628
	HopSendingTime     uint32 = 629
	HopRefID           uint32 = 630
	ClearingFeeIndicator uint32 = 635
	LegLastPx          uint32 = 637
	UnderlyingLastPx   uint32 = 651
	UnderlyingLastQty  uint32 = 652
	LegRefID           uint32 = 654
	AcctIDSource       uint32 = 660
	AllocAcctIDSource  uint32 = 661
	NoLegAllocs        uint32 = 670
	LegAllocAccount    uint32 = 671
	LegIndividualAllocID uint32 = 672
	LegAllocQty        uint32 = 673
	LegAllocAcctIDSource uint32 = 674
	LegSettlCurrency   uint32 = 675
	NoLegStipulations  uint32 = 683
	LegQty             uint32 = 687
	LegStipulationType uint32 = 688
	LegStipulationValue uint32 = 689
	LegSwapType        uint32 = 690
	QuoteQualifier     uint32 = 695
	NoPositions        uint32 = 702
	PosType            uint32 = 703
	LongQty            uint32 = 704
	ShortQty           uint32 = 705
	PosQtyStatus       uint32 = 706
	PosAmtType         uint32 = 707
	PosAmt             uint32 = 708
	NoUnderlyings      uint32 = 711
	UnderlyingSettlPrice uint32 = 732
	UnderlyingSettlPriceType uint32 = 733
	NoQuoteQualifiers  uint32 = 735
	AllocSettlCurrency uint32 = 736
	InterestAtMaturity uint32 = 738
	LegDatedDate       uint32 = 739
	LegPool            uint32 = 740
	SideMultiLegReportingType uint32 = 752
	NoPosAmt           uint32 = 753
	NoNested2PartyIDs  uint32 = 756
	Nested2PartyID     uint32 = 757
	Nested2PartyIDSource uint32 = 758
	Nested2PartyRole   uint32 = 759
	Nested2PartySubID  uint32 = 760
	UnderlyingSecuritySubType uint32 = 763
	NoTrdRegTimestamps uint32 = 768
	TrdRegTimestamp    uint32 = 769
	TrdRegTimestampType uint32 = 770
	TrdRegTimestampOrigin uint32 = 771
	NoSettlInst        uint32 = 778
	NoSettlPartyIDs    uint32 = 781
	SettlPartyID       uint32 = 782
	SettlPartyIDSource uint32 = 783
	SettlPartyRole     uint32 = 784
	SettlPartySubID    uint32 = 785
	SettlPartySubIDType uint32 = 786
	NoPartySubIDs      uint32 = 802
	PartySubIDType     uint32 = 803
	NoNestedPartySubIDs uint32 = 804
	NestedPartySubIDType uint32 = 805
	NoNested2PartySubIDs uint32 = 806
	Nested2PartySubIDType uint32 = 807
	NoAltMDSource      uint32 = 816
	AltMDSourceID      uint32 = 817
	SecondaryTradeReportID uint32 = 818
	OrderInputDevice   uint32 = 821
	ExchangeRule       uint32 = 825
	TradeAllocIndicator uint32 = 826
	NoCapacities       uint32 = 862
	OrderCapacityQty   uint32 = 863
	NoEvents           uint32 = 864
	EventType          uint32 = 865
	EventDate          uint32 = 866
	EventPx            uint32 = 867
	EventText          uint32 = 868
	NoInstrAttrib      uint32 = 870
	InstrAttribType    uint32 = 871
	InstrAttribValue   uint32 = 872
	UnderlyingCPProgram uint32 = 877
	UnderlyingCPRegType uint32 = 878
	UnderlyingQty      uint32 = 879
	UnderlyingDirtyPrice uint32 = 882
	UnderlyingEndPrice uint32 = 883
	UnderlyingStartValue uint32 = 884
	UnderlyingCurrentValue uint32 = 885
	UnderlyingEndValue uint32 = 886
	NoUnderlyingStips  uint32 = 887
	UnderlyingStipType uint32 = 888
	UnderlyingStipValue uint32 = 889
	MiscFeeBasis       uint32 = 891
	CollInquiryQualifier uint32 = 896
	NoTrades           uint32 = 897
	EndAccruedInterestAmt uint32 = 920
	StartCash          uint32 = 921
	EndCash            uint32 = 922
	StatusValue        uint32 = 928
	StatusText         uint32 = 929
	RefCompID          uint32 = 930
	RefSubID           uint32 = 931
	NoCompIDs          uint32 = 936
	NoCollInquiryQualifier uint32 = 938
	UnderlyingStrikeCurrency uint32 = 941
	NoNested3PartyIDs  uint32 = 948
	Nested3PartyID     uint32 = 949
	Nested3PartyIDSource uint32 = 950
	Nested3PartyRole   uint32 = 951
	Nested3PartySubID  uint32 = 953
	Nested3PartySubIDType uint32 = 954
	LegContractSettlMonth uint32 = 955
	LegInterestAccrualDate uint32 = 956

	// PositionEffect is the FIX 4.3+ name for tag 77 (OpenClose in 4.2).
	PositionEffect = OpenClose
)
