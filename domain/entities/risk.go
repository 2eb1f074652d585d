package entities

// RiskLevel represents how much damage a method call can do if issued by the wrong caller.
type RiskLevel int

const (
	RiskLevelLow      RiskLevel = iota // Reads and pure computation
	RiskLevelMedium                    // Local state changes, node traffic
	RiskLevelHigh                      // Moves, mints or destroys funds
	RiskLevelCritical                  // Touches secrets or backups
)

// String returns the human-readable name of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLevelLow:
		return "Low"
	case RiskLevelMedium:
		return "Medium"
	case RiskLevelHigh:
		return "High"
	case RiskLevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// ParseRiskLevel is the inverse of RiskLevel.String. It is case-sensitive.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	for _, l := range []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical} {
		if l.String() == s {
			return l, true
		}
	}
	return RiskLevelLow, false
}

// MethodFamily groups the three method vocabularies.
type MethodFamily string

const (
	FamilyAccount MethodFamily = "account"
	FamilyWallet  MethodFamily = "wallet"
	FamilyUtils   MethodFamily = "utils"
)

// MethodKey is the policy name of a method, e.g. "account/sendAmount".
func MethodKey(family MethodFamily, name string) string {
	return string(family) + "/" + name
}

var defaultMethodRisk = map[string]RiskLevel{
	MethodKey(FamilyWallet, WalletMethodBackup):                   RiskLevelCritical,
	MethodKey(FamilyWallet, WalletMethodRestoreBackup):            RiskLevelCritical,
	MethodKey(FamilyWallet, WalletMethodChangeStrongholdPassword): RiskLevelCritical,
	MethodKey(FamilyWallet, WalletMethodSetStrongholdPassword):    RiskLevelCritical,
	MethodKey(FamilyWallet, WalletMethodClearStrongholdPassword):  RiskLevelCritical,
	MethodKey(FamilyWallet, WalletMethodStoreMnemonic):            RiskLevelCritical,

	MethodKey(FamilyWallet, WalletMethodRemoveLatestAccount):         RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodBurn):                      RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodConsolidateOutputs):        RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodCreateAliasOutput):         RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodDecreaseNativeTokenSupply): RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodIncreaseNativeTokenSupply): RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodMintNativeToken):           RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodMintNfts):                  RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodSendAmount):                RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodSendNativeTokens):          RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodSendNft):                   RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodSendOutputs):               RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodSignTransactionEssence):    RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodSubmitAndStoreTransaction): RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodClaimOutputs):              RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodVote):                      RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodStopParticipating):         RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodIncreaseVotingPower):       RiskLevelHigh,
	MethodKey(FamilyAccount, AccountMethodDecreaseVotingPower):       RiskLevelHigh,

	MethodKey(FamilyWallet, WalletMethodCreateAccount):                      RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodRecoverAccounts):                    RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodSetClientOptions):                   RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodGenerateAddress):                    RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodSetStrongholdPasswordClearInterval): RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodStartBackgroundSync):                RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodStopBackgroundSync):                 RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodEmitTestEvent):                      RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodClearListeners):                     RiskLevelMedium,
	MethodKey(FamilyWallet, WalletMethodUpdateNodeAuth):                     RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodGenerateAddresses):                RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodPrepareOutput):                    RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodPrepareTransaction):               RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodPrepareSendAmount):                RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodRetryTransactionUntilIncluded):    RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodSync):                             RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodSetAlias):                         RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodSetDefaultSyncOptions):            RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodRegisterParticipationEvents):      RiskLevelMedium,
	MethodKey(FamilyAccount, AccountMethodDeregisterParticipationEvent):     RiskLevelMedium,
	MethodKey(FamilyUtils, UtilsMethodGenerateMnemonic):                     RiskLevelMedium,
	MethodKey(FamilyUtils, UtilsMethodMnemonicToHexSeed):                    RiskLevelMedium,
}

// riskAssessorConfig holds configuration for the RiskAssessor.
type riskAssessorConfig struct {
	overrides    map[string]RiskLevel
	defaultLevel RiskLevel
}

func defaultRiskAssessorConfig() riskAssessorConfig {
	return riskAssessorConfig{
		overrides:    make(map[string]RiskLevel),
		defaultLevel: RiskLevelLow,
	}
}

// RiskAssessorOption configures a RiskAssessor instance.
type RiskAssessorOption func(*riskAssessorConfig)

// WithMethodRisk overrides the risk of a single method key.
func WithMethodRisk(key string, level RiskLevel) RiskAssessorOption {
	return func(c *riskAssessorConfig) {
		c.overrides[key] = level
	}
}

// WithDefaultRisk sets the level of methods missing from the built-in table.
func WithDefaultRisk(level RiskLevel) RiskAssessorOption {
	return func(c *riskAssessorConfig) {
		c.defaultLevel = level
	}
}

// RiskAssessor classifies method calls.
type RiskAssessor struct {
	config riskAssessorConfig
}

// NewRiskAssessor creates a new RiskAssessor with the given options.
func NewRiskAssessor(opts ...RiskAssessorOption) *RiskAssessor {
	cfg := defaultRiskAssessorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RiskAssessor{config: cfg}
}

// AssessMethod returns the risk of calling name in family.
func (r *RiskAssessor) AssessMethod(family MethodFamily, name string) RiskLevel {
	key := MethodKey(family, name)
	if level, ok := r.config.overrides[key]; ok {
		return level
	}
	if level, ok := defaultMethodRisk[key]; ok {
		return level
	}
	return r.config.defaultLevel
}

// IsSensitive reports whether a method carries secrets in its payload.
func IsSensitive(family MethodFamily, name string) bool {
	return defaultMethodRisk[MethodKey(family, name)] == RiskLevelCritical
}
