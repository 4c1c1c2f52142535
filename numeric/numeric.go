/*
 * MIT License
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package numeric ports the RFC numeric-reply constant table. spec.md places
// this out of scope as "a static lookup surface" but does not forbid
// providing it; callers of the irc.Callbacks.Numeric slot can match against
// names instead of bare integers.
package numeric

// Reply replies (001-399).
const (
	RPL_WELCOME       = 1
	RPL_YOURHOST      = 2
	RPL_CREATED       = 3
	RPL_MYINFO        = 4
	RPL_ISUPPORT      = 5
	RPL_BOUNCE        = 10
	RPL_UMODEIS       = 221
	RPL_LUSERCLIENT   = 251
	RPL_LUSEROP       = 252
	RPL_LUSERUNKNOWN  = 253
	RPL_LUSERCHANNELS = 254
	RPL_LUSERME       = 255
	RPL_AWAY          = 301
	RPL_USERHOST      = 302
	RPL_ISON          = 303
	RPL_UNAWAY        = 305
	RPL_NOWAWAY       = 306
	RPL_WHOISUSER     = 311
	RPL_WHOISSERVER   = 312
	RPL_WHOISOPERATOR = 313
	RPL_WHOWASUSER    = 314
	RPL_ENDOFWHO      = 315
	RPL_WHOISIDLE     = 317
	RPL_ENDOFWHOIS    = 318
	RPL_WHOISCHANNELS = 319
	RPL_LISTSTART     = 321
	RPL_LIST          = 322
	RPL_LISTEND       = 323
	RPL_CHANNELMODEIS = 324
	RPL_NOTOPIC       = 331
	RPL_TOPIC         = 332
	RPL_INVITING      = 341
	RPL_SUMMONING     = 342
	RPL_VERSION       = 351
	RPL_WHOREPLY      = 352
	RPL_NAMREPLY      = 353
	RPL_LINKS         = 364
	RPL_ENDOFLINKS    = 365
	RPL_ENDOFNAMES    = 366
	RPL_BANLIST       = 367
	RPL_ENDOFBANLIST  = 368
	RPL_ENDOFWHOWAS   = 369
	RPL_INFO          = 371
	RPL_MOTD          = 372
	RPL_ENDOFINFO     = 374
	RPL_MOTDSTART     = 375
	RPL_ENDOFMOTD     = 376
	RPL_YOUREOPER     = 381
	RPL_REHASHING     = 382
	RPL_TIME          = 391
	RPL_USERSSTART    = 392
	RPL_USERS         = 393
	RPL_ENDOFUSERS    = 394
	RPL_NOUSERS       = 395
)

// Trace and stats replies (200-261), plus the admin-info block (256-259).
const (
	RPL_TRACELINK        = 200
	RPL_TRACECONNECTING  = 201
	RPL_TRACEHANDSHAKE   = 202
	RPL_TRACEUNKNOWN     = 203
	RPL_TRACEOPERATOR    = 204
	RPL_TRACEUSER        = 205
	RPL_TRACESERVER      = 206
	RPL_TRACENEWTYPE     = 208
	RPL_STATSLINKINFO    = 211
	RPL_STATSCOMMANDS    = 212
	RPL_STATSCLINE       = 213
	RPL_STATSNLINE       = 214
	RPL_STATSILINE       = 215
	RPL_STATSKLINE       = 216
	RPL_STATSYLINE       = 218
	RPL_ENDOFSTATS       = 219
	RPL_STATSLLINE       = 241
	RPL_STATSUPTIME      = 242
	RPL_STATSOLINE       = 243
	RPL_STATSHLINE       = 244
	RPL_ADMINME          = 256
	RPL_ADMINLOC1        = 257
	RPL_ADMINLOC2        = 258
	RPL_ADMINEMAIL       = 259
	RPL_TRACELOG         = 261
)

// Error replies (400-599).
const (
	ERR_NOSUCHNICK       = 401
	ERR_NOSUCHSERVER     = 402
	ERR_NOSUCHCHANNEL    = 403
	ERR_CANNOTSENDTOCHAN = 404
	ERR_TOOMANYCHANNELS  = 405
	ERR_WASNOSUCHNICK    = 406
	ERR_TOOMANYTARGETS   = 407
	ERR_NOORIGIN         = 409
	ERR_NORECIPIENT      = 411
	ERR_NOTEXTTOSEND     = 412
	ERR_NOTOPLEVEL       = 413
	ERR_WILDTOPLEVEL     = 414
	ERR_UNKNOWNCOMMAND   = 421
	ERR_NOMOTD           = 422
	ERR_NOADMININFO      = 423
	ERR_FILEERROR        = 424
	ERR_NONICKNAMEGIVEN  = 431
	ERR_ERRONEUSNICKNAME = 432
	ERR_NICKNAMEINUSE    = 433
	ERR_NICKCOLLISION    = 436
	ERR_USERNOTINCHANNEL = 441
	ERR_NOTONCHANNEL     = 442
	ERR_USERONCHANNEL    = 443
	ERR_NOLOGIN          = 444
	ERR_SUMMONDISABLED   = 445
	ERR_USERSDISABLED    = 446
	ERR_NOTREGISTERED    = 451
	ERR_NEEDMOREPARAMS   = 461
	ERR_ALREADYREGISTRED = 462
	ERR_NOPERMFORHOST    = 463
	ERR_PASSWDMISMATCH   = 464
	ERR_YOUREBANNEDCREEP = 465
	ERR_KEYSET           = 467
	ERR_CHANNELISFULL    = 471
	ERR_UNKNOWNMODE      = 472
	ERR_INVITEONLYCHAN   = 473
	ERR_BANNEDFROMCHAN   = 474
	ERR_BADCHANNELKEY    = 475
	ERR_BADCHANMASK      = 476
	ERR_NOPRIVILEGES     = 481
	ERR_CHANOPRIVSNEEDED = 482
	ERR_CANTKILLSERVER   = 483
	ERR_NOOPERHOST       = 491
	ERR_UMODEUNKNOWNFLAG = 501
	ERR_USERSDONTMATCH   = 502
)

// Name returns the symbolic name of a numeric reply code, or "" if unknown.
func Name(code int) string {
	if n, ok := names[code]; ok {
		return n
	}
	return ""
}

var names = buildNames()

func buildNames() map[int]string {
	return map[int]string{
		RPL_WELCOME: "RPL_WELCOME", RPL_YOURHOST: "RPL_YOURHOST", RPL_CREATED: "RPL_CREATED",
		RPL_MYINFO: "RPL_MYINFO", RPL_ISUPPORT: "RPL_ISUPPORT", RPL_BOUNCE: "RPL_BOUNCE",
		RPL_UMODEIS: "RPL_UMODEIS", RPL_LUSERCLIENT: "RPL_LUSERCLIENT", RPL_LUSEROP: "RPL_LUSEROP",
		RPL_LUSERUNKNOWN: "RPL_LUSERUNKNOWN", RPL_LUSERCHANNELS: "RPL_LUSERCHANNELS",
		RPL_LUSERME: "RPL_LUSERME", RPL_AWAY: "RPL_AWAY", RPL_USERHOST: "RPL_USERHOST",
		RPL_ISON: "RPL_ISON", RPL_UNAWAY: "RPL_UNAWAY", RPL_NOWAWAY: "RPL_NOWAWAY",
		RPL_WHOISUSER: "RPL_WHOISUSER", RPL_WHOISSERVER: "RPL_WHOISSERVER",
		RPL_WHOISOPERATOR: "RPL_WHOISOPERATOR", RPL_WHOWASUSER: "RPL_WHOWASUSER",
		RPL_ENDOFWHO: "RPL_ENDOFWHO", RPL_WHOISIDLE: "RPL_WHOISIDLE", RPL_ENDOFWHOIS: "RPL_ENDOFWHOIS",
		RPL_WHOISCHANNELS: "RPL_WHOISCHANNELS", RPL_LISTSTART: "RPL_LISTSTART", RPL_LIST: "RPL_LIST",
		RPL_LISTEND: "RPL_LISTEND", RPL_CHANNELMODEIS: "RPL_CHANNELMODEIS", RPL_NOTOPIC: "RPL_NOTOPIC",
		RPL_TOPIC: "RPL_TOPIC", RPL_INVITING: "RPL_INVITING", RPL_SUMMONING: "RPL_SUMMONING",
		RPL_VERSION: "RPL_VERSION", RPL_WHOREPLY: "RPL_WHOREPLY", RPL_NAMREPLY: "RPL_NAMREPLY",
		RPL_LINKS: "RPL_LINKS", RPL_ENDOFLINKS: "RPL_ENDOFLINKS", RPL_ENDOFNAMES: "RPL_ENDOFNAMES",
		RPL_BANLIST: "RPL_BANLIST", RPL_ENDOFBANLIST: "RPL_ENDOFBANLIST", RPL_ENDOFWHOWAS: "RPL_ENDOFWHOWAS",
		RPL_INFO: "RPL_INFO", RPL_MOTD: "RPL_MOTD", RPL_ENDOFINFO: "RPL_ENDOFINFO",
		RPL_MOTDSTART: "RPL_MOTDSTART", RPL_ENDOFMOTD: "RPL_ENDOFMOTD", RPL_YOUREOPER: "RPL_YOUREOPER",
		RPL_REHASHING: "RPL_REHASHING", RPL_TIME: "RPL_TIME", RPL_USERSSTART: "RPL_USERSSTART",
		RPL_USERS: "RPL_USERS", RPL_ENDOFUSERS: "RPL_ENDOFUSERS", RPL_NOUSERS: "RPL_NOUSERS",

		RPL_TRACELINK: "RPL_TRACELINK", RPL_TRACECONNECTING: "RPL_TRACECONNECTING",
		RPL_TRACEHANDSHAKE: "RPL_TRACEHANDSHAKE", RPL_TRACEUNKNOWN: "RPL_TRACEUNKNOWN",
		RPL_TRACEOPERATOR: "RPL_TRACEOPERATOR", RPL_TRACEUSER: "RPL_TRACEUSER",
		RPL_TRACESERVER: "RPL_TRACESERVER", RPL_TRACENEWTYPE: "RPL_TRACENEWTYPE",
		RPL_STATSLINKINFO: "RPL_STATSLINKINFO", RPL_STATSCOMMANDS: "RPL_STATSCOMMANDS",
		RPL_STATSCLINE: "RPL_STATSCLINE", RPL_STATSNLINE: "RPL_STATSNLINE",
		RPL_STATSILINE: "RPL_STATSILINE", RPL_STATSKLINE: "RPL_STATSKLINE",
		RPL_STATSYLINE: "RPL_STATSYLINE", RPL_ENDOFSTATS: "RPL_ENDOFSTATS",
		RPL_STATSLLINE: "RPL_STATSLLINE", RPL_STATSUPTIME: "RPL_STATSUPTIME",
		RPL_STATSOLINE: "RPL_STATSOLINE", RPL_STATSHLINE: "RPL_STATSHLINE",
		RPL_ADMINME: "RPL_ADMINME", RPL_ADMINLOC1: "RPL_ADMINLOC1", RPL_ADMINLOC2: "RPL_ADMINLOC2",
		RPL_ADMINEMAIL: "RPL_ADMINEMAIL", RPL_TRACELOG: "RPL_TRACELOG",

		ERR_NOSUCHNICK: "ERR_NOSUCHNICK", ERR_NOSUCHSERVER: "ERR_NOSUCHSERVER",
		ERR_NOSUCHCHANNEL: "ERR_NOSUCHCHANNEL", ERR_CANNOTSENDTOCHAN: "ERR_CANNOTSENDTOCHAN",
		ERR_TOOMANYCHANNELS: "ERR_TOOMANYCHANNELS", ERR_WASNOSUCHNICK: "ERR_WASNOSUCHNICK",
		ERR_TOOMANYTARGETS: "ERR_TOOMANYTARGETS", ERR_NOORIGIN: "ERR_NOORIGIN",
		ERR_NORECIPIENT: "ERR_NORECIPIENT", ERR_NOTEXTTOSEND: "ERR_NOTEXTTOSEND",
		ERR_NOTOPLEVEL: "ERR_NOTOPLEVEL", ERR_WILDTOPLEVEL: "ERR_WILDTOPLEVEL",
		ERR_UNKNOWNCOMMAND: "ERR_UNKNOWNCOMMAND", ERR_NOMOTD: "ERR_NOMOTD",
		ERR_NOADMININFO: "ERR_NOADMININFO", ERR_FILEERROR: "ERR_FILEERROR",
		ERR_NONICKNAMEGIVEN: "ERR_NONICKNAMEGIVEN", ERR_ERRONEUSNICKNAME: "ERR_ERRONEUSNICKNAME",
		ERR_NICKNAMEINUSE: "ERR_NICKNAMEINUSE", ERR_NICKCOLLISION: "ERR_NICKCOLLISION",
		ERR_USERNOTINCHANNEL: "ERR_USERNOTINCHANNEL", ERR_NOTONCHANNEL: "ERR_NOTONCHANNEL",
		ERR_USERONCHANNEL: "ERR_USERONCHANNEL", ERR_NOLOGIN: "ERR_NOLOGIN",
		ERR_SUMMONDISABLED: "ERR_SUMMONDISABLED", ERR_USERSDISABLED: "ERR_USERSDISABLED",
		ERR_NOTREGISTERED: "ERR_NOTREGISTERED", ERR_NEEDMOREPARAMS: "ERR_NEEDMOREPARAMS",
		ERR_ALREADYREGISTRED: "ERR_ALREADYREGISTRED", ERR_NOPERMFORHOST: "ERR_NOPERMFORHOST",
		ERR_PASSWDMISMATCH: "ERR_PASSWDMISMATCH",
		ERR_YOUREBANNEDCREEP: "ERR_YOUREBANNEDCREEP", ERR_KEYSET: "ERR_KEYSET",
		ERR_CHANNELISFULL: "ERR_CHANNELISFULL", ERR_UNKNOWNMODE: "ERR_UNKNOWNMODE",
		ERR_INVITEONLYCHAN: "ERR_INVITEONLYCHAN", ERR_BANNEDFROMCHAN: "ERR_BANNEDFROMCHAN",
		ERR_BADCHANNELKEY: "ERR_BADCHANNELKEY", ERR_BADCHANMASK: "ERR_BADCHANMASK",
		ERR_NOPRIVILEGES: "ERR_NOPRIVILEGES",
		ERR_CHANOPRIVSNEEDED: "ERR_CHANOPRIVSNEEDED", ERR_CANTKILLSERVER: "ERR_CANTKILLSERVER",
		ERR_NOOPERHOST: "ERR_NOOPERHOST", ERR_UMODEUNKNOWNFLAG: "ERR_UMODEUNKNOWNFLAG",
		ERR_USERSDONTMATCH: "ERR_USERSDONTMATCH",
	}
}

// IsError reports whether code is a server-reported application error
// (spec §7: numeric replies >= 400), surfaced via Callbacks.Numeric and
// never treated as a transport error.
func IsError(code int) bool {
	return code >= 400
}
