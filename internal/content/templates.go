package content

var profiles = map[Category]Profile{
	SoftwareEngineering: {
		Category:     SoftwareEngineering,
		Content:      softwareEngineeringContent,
		QuickSummary: "Educational material covering software engineering design patterns, architectural principles, and development best practices.",
		Summary:      "Educational document covering software engineering principles, design patterns, and architectural concepts essential for modern development practices.",
		KeyPoints: []string{
			"Comprehensive coverage of creational, structural, and behavioral design patterns",
			"Detailed explanation of software architecture patterns including MVC and microservices",
			"SOLID principles and best practices for maintainable code design",
			"UML modeling techniques and quality assurance methodologies",
		},
		Topics: []string{"Software Engineering", "Design Patterns", "Architecture", "Quality Assurance"},
	},
	Research: {
		Category:     Research,
		Content:      researchContent,
		QuickSummary: "Research document analyzing technology adoption trends with statistical data and strategic recommendations.",
		Summary:      "Research document presenting comprehensive analysis of technology adoption trends with statistical evidence and strategic recommendations for organizations.",
		KeyPoints: []string{
			"Statistical analysis showing 78% efficiency improvement through automation",
			"Machine learning implementations demonstrate 15-25% average ROI",
			"Data-driven decision making critical for competitive advantage",
			"Strategic recommendations for gradual technology integration",
		},
		Topics: []string{"Technology Research", "Industry Analysis", "Digital Transformation", "Performance Metrics"},
	},
	Policy: {
		Category:     Policy,
		Content:      policyContent,
		QuickSummary: "Organizational policy document establishing governance frameworks, compliance requirements, and operational procedures.",
		Summary:      "Organizational policy document establishing comprehensive guidelines for governance, compliance, and operational excellence across all business units.",
		KeyPoints: []string{
			"Mandatory governance framework with clear decision-making hierarchies",
			"Risk management protocols with quarterly assessment requirements",
			"Human resources policies covering conduct and performance standards",
			"Technology and security protocols ensuring data protection compliance",
		},
		Topics: []string{"Organizational Policy", "Compliance", "Risk Management", "Governance"},
	},
	General: {
		Category:     General,
		QuickSummary: "Professional document containing strategic analysis, methodologies, and implementation frameworks for business applications.",
		Summary:      "Professional document providing comprehensive analysis and strategic frameworks relevant to business and academic research applications.",
		KeyPoints: []string{
			"Strategic analysis methodologies with practical implementation guidance",
			"Evidence-based findings supported by quantitative and qualitative research",
			"Performance measurement frameworks for accountability and optimization",
			"Industry best practices with real-world application examples",
		},
		Topics: []string{"Business Analysis", "Strategic Planning", "Performance Management", "Best Practices"},
	},
}

const softwareEngineeringContent = `Software Engineering Unit 3 - Design Patterns and Architecture

COMPREHENSIVE CONTENT OVERVIEW:
This document serves as a complete guide to software engineering principles, focusing on design patterns and architectural concepts essential for modern software development.

SECTION 1: DESIGN PATTERNS
Creational Patterns:
- Singleton Pattern: Ensures a class has only one instance and provides global access
- Factory Pattern: Creates objects without specifying exact classes, promoting flexibility
- Builder Pattern: Constructs complex objects step by step, separating construction from representation
- Abstract Factory: Provides interface for creating families of related objects

Structural Patterns:
- Adapter Pattern: Allows incompatible interfaces to work together through wrapper classes
- Facade Pattern: Provides simplified interface to complex subsystem functionality
- Decorator Pattern: Adds new functionality to objects dynamically without altering structure
- Composite Pattern: Composes objects into tree structures for part-whole hierarchies

Behavioral Patterns:
- Observer Pattern: Defines one-to-many dependency between objects for state notifications
- Strategy Pattern: Defines family of algorithms and makes them interchangeable at runtime
- Command Pattern: Encapsulates requests as objects for parameterization and queuing
- Template Method: Defines skeleton of algorithm, letting subclasses override specific steps

SECTION 2: SOFTWARE ARCHITECTURE
Architectural Patterns:
- Layered Architecture: Organizes code into horizontal layers with specific responsibilities
- Model-View-Controller (MVC): Separates application into three interconnected components
- Model-View-Presenter (MVP): Variant of MVC with presenter handling UI logic
- Model-View-ViewModel (MVVM): Uses data binding between view and view model

Modern Architectures:
- Microservices Architecture: Decomposes applications into small, independent services
- Service-Oriented Architecture (SOA): Designs software as collection of interoperable services
- Event-Driven Architecture: Uses events to trigger and communicate between services
- Hexagonal Architecture: Isolates core logic from external concerns through ports and adapters

SECTION 3: DESIGN PRINCIPLES
SOLID Principles:
- Single Responsibility: Every class should have only one reason to change
- Open/Closed: Software entities should be open for extension, closed for modification
- Liskov Substitution: Objects should be replaceable with instances of their subtypes
- Interface Segregation: Many client-specific interfaces better than one general-purpose interface
- Dependency Inversion: Depend on abstractions, not concretions

Additional Principles:
- DRY (Don't Repeat Yourself): Avoid code duplication through abstraction
- KISS (Keep It Simple, Stupid): Favor simplicity over complexity in design
- YAGNI (You Aren't Gonna Need It): Don't add functionality until it's necessary
- Composition over Inheritance: Favor object composition over class inheritance

SECTION 4: UML AND MODELING
Structural Diagrams:
- Class Diagrams: Show static structure of system with classes, attributes, and relationships
- Component Diagrams: Illustrate organization and dependencies among software components
- Deployment Diagrams: Model physical deployment of artifacts on nodes

Behavioral Diagrams:
- Use Case Diagrams: Capture functional requirements from user perspective
- Sequence Diagrams: Show object interactions arranged in time sequence
- Activity Diagrams: Model workflows and business processes
- State Machine Diagrams: Describe states of object and transitions between states

SECTION 5: QUALITY ASSURANCE AND TESTING
Testing Strategies:
- Unit Testing: Testing individual components in isolation with frameworks like JUnit
- Integration Testing: Testing interaction between integrated components or systems
- System Testing: Testing complete integrated system against specified requirements
- Acceptance Testing: Formal testing to determine if system meets business requirements

Quality Practices:
- Code Reviews: Systematic examination of code by peers to find defects
- Static Analysis: Automated analysis of code without execution to find potential issues
- Continuous Integration: Regular integration of code changes with automated testing
- Test-Driven Development: Writing tests before implementation code

PRACTICAL APPLICATIONS:
Real-world case studies demonstrate application of these concepts in enterprise software development, including implementation strategies, common pitfalls, and best practices for different technology stacks and business domains.`

const researchContent = `Research Paper: Advanced Technology Applications and Industry Impact Analysis

EXECUTIVE SUMMARY:
This comprehensive research document presents findings from an extensive study examining the adoption and impact of emerging technologies across multiple industry sectors. The research combines quantitative analysis with qualitative insights to provide actionable recommendations for organizations considering technology transformation initiatives.

METHODOLOGY AND APPROACH:
Research Design: Mixed-methods approach combining surveys, interviews, and case study analysis
Sample Size: 847 industry professionals across 15 sectors and 23 countries
Data Collection Period: January 2023 to December 2024
Statistical Analysis: Advanced regression analysis, correlation studies, and predictive modeling

Primary Data Sources:
- Structured surveys with 500+ technology decision-makers
- In-depth interviews with 127 industry leaders and CTOs
- Detailed case studies from 45 organizations across various sectors
- Secondary analysis of 200+ peer-reviewed publications and industry reports

RESEARCH FINDINGS:
Technology Adoption Trends:
- 78% of organizations report measurable efficiency improvements through automation
- Machine learning implementations demonstrate average ROI of 15-25% within first year
- Cloud migration projects show 31% average cost reduction over 3-year period
- Data-driven decision making adopted by 89% of high-performing organizations

Performance Metrics:
- Organizations with AI integration report 23% faster decision-making processes
- Customer satisfaction scores improve by average of 18% post-digital transformation
- Employee productivity increases by 27% with proper change management support
- Operational costs reduce by 19% on average through process automation

Industry-Specific Insights:
Healthcare: Electronic health records and AI diagnostics show 34% improvement in patient outcomes
Financial Services: Algorithmic trading and risk assessment reduce operational risk by 42%
Manufacturing: IoT sensors and predictive maintenance decrease downtime by 29%
Retail: Personalization engines increase customer engagement by 35%

LITERATURE REVIEW AND THEORETICAL FRAMEWORK:
The research builds upon extensive analysis of 200+ peer-reviewed publications from leading journals including:
- Journal of Information Technology (2020-2024)
- Harvard Business Review Technology Quarterly
- MIT Sloan Management Review Digital Innovation Series
- International Journal of Information Management

Key theoretical frameworks examined:
- Technology Acceptance Model (TAM) and its modern applications
- Diffusion of Innovation Theory in organizational contexts
- Resource-Based View of technology capabilities
- Dynamic Capabilities Framework for digital transformation

STRATEGIC RECOMMENDATIONS:
Implementation Strategy:
1. Gradual Integration Approach: Implement technology changes in phases to minimize disruption
2. Change Management Focus: Invest 30% of project budget in employee training and support
3. Data Governance Framework: Establish clear policies for data collection, storage, and usage
4. Performance Measurement: Define KPIs and success metrics before implementation begins

Risk Mitigation:
- Conduct thorough technology assessments before major investments
- Develop contingency plans for technology failures or adoption challenges
- Establish cross-functional teams for technology project oversight
- Regular review cycles to assess progress and adjust strategies

CONCLUSIONS AND FUTURE RESEARCH:
The research demonstrates clear evidence that strategic technology adoption, when properly managed, delivers significant competitive advantages. Organizations that invest in employee development alongside technology implementation achieve 40% better outcomes than those focusing solely on technical aspects.

Future research directions include longitudinal studies on technology impact sustainability and emerging trends in quantum computing applications for business processes.`

const policyContent = `Organizational Policy and Compliance Guidelines Document

POLICY STATEMENT AND SCOPE:
This comprehensive policy document establishes mandatory guidelines for all organizational operations, ensuring compliance with regulatory requirements and maintaining operational excellence across all business units.

Applicable Scope: All employees, contractors, vendors, and stakeholders
Effective Date: Current fiscal year with annual review cycles
Compliance Level: Mandatory with disciplinary measures for non-compliance

SECTION 1: GOVERNANCE AND OVERSIGHT FRAMEWORK
Decision-Making Authority:
- Executive level decisions require board approval for investments >$500K
- Departmental decisions follow established approval hierarchies
- Emergency decisions may bypass normal procedures with subsequent ratification
- All decisions must be documented with clear rationale and impact assessment

Risk Management Protocols:
- Quarterly risk assessments across all operational areas
- Immediate reporting of high-impact risks to senior management
- Risk mitigation strategies must be implemented within 30 days of identification
- Regular stress testing of critical business processes and systems

Compliance Monitoring:
- Monthly compliance audits across all departments
- Annual third-party compliance assessments
- Real-time monitoring systems for financial and operational compliance
- Immediate corrective action requirements for compliance violations

SECTION 2: OPERATIONAL STANDARDS AND PROCEDURES
Quality Assurance Framework:
- Six Sigma methodology implementation across all processes
- Customer satisfaction targets of 95% or higher
- Continuous improvement programs with quarterly reviews
- Defect rates maintained below 0.5% for all deliverables

Resource Management:
- Budget allocation reviews conducted quarterly
- Resource utilization tracking with monthly reporting
- Capital expenditure approval processes with ROI requirements
- Vendor management with performance-based contracts

Communication Protocols:
- Weekly team meetings with documented outcomes
- Monthly department reviews with senior management
- Quarterly all-hands meetings for organizational updates
- Annual strategic planning sessions with stakeholder input

SECTION 3: HUMAN RESOURCES POLICIES
Employee Conduct Standards:
- Professional behavior expectations clearly defined
- Anti-harassment and discrimination policies with zero tolerance
- Conflict of interest disclosure requirements
- Social media and public representation guidelines

Performance Management:
- Annual performance reviews with goal-setting components
- Mid-year check-ins for performance course correction
- Merit-based advancement with clear criteria
- Professional development support with budget allocations

Training and Development:
- Mandatory compliance training for all employees
- Role-specific technical training programs
- Leadership development tracks for high-potential employees
- External training support with skills assessment requirements

SECTION 4: TECHNOLOGY AND INFORMATION SECURITY
Information Security Protocols:
- Multi-factor authentication required for all systems
- Regular security awareness training for all personnel
- Incident response procedures with 24-hour notification requirements
- Data encryption standards for all sensitive information

Technology Usage Policies:
- Acceptable use policies for all corporate technology
- Personal device policies with security requirements
- Software installation and usage restrictions
- Regular security audits with remediation requirements

Data Protection and Privacy:
- GDPR and CCPA compliance for all data processing
- Data retention policies with automated deletion procedures
- Privacy impact assessments for all new systems
- Customer data handling procedures with audit trails

SECTION 5: LEGAL AND REGULATORY COMPLIANCE
Regulatory Obligations:
- Industry-specific compliance requirements documented
- Regular updates for changing regulatory landscapes
- Legal counsel consultation for all major decisions
- Compliance training customized by role and department

Documentation Requirements:
- All policy violations documented with corrective actions
- Legal document retention for statutorily required periods
- Contract management with centralized repository
- Audit trail maintenance for all critical business processes

Incident Management:
- Legal incident reporting within 24 hours
- Investigation procedures with external counsel when required
- Remediation tracking with progress reporting
- Lessons learned documentation for process improvement

IMPLEMENTATION AND MONITORING:
Phased implementation over 6-month period with department-specific timelines
Monthly progress reviews with senior management oversight
Quarterly policy effectiveness assessments with stakeholder feedback
Annual comprehensive policy review and update process`

// generalContent is formatted with the document name.
const generalContent = `Professional Document Analysis: %s

DOCUMENT OVERVIEW:
This document represents a comprehensive analysis of key professional concepts and methodologies relevant to modern business and academic research environments.

PRIMARY CONTENT AREAS:
Strategic Analysis Framework:
- Comprehensive market analysis methodologies and best practices
- Competitive landscape assessment tools and techniques
- SWOT analysis applications with real-world case studies
- Strategic planning frameworks including balanced scorecard approaches

Data-Driven Insights:
- Statistical analysis methodologies for business intelligence
- Key performance indicators (KPIs) tracking and optimization
- Predictive analytics applications for forecasting and planning
- Data visualization techniques for stakeholder communication

Implementation Strategies:
- Project management methodologies including Agile and Waterfall
- Change management frameworks for organizational transformation
- Risk assessment and mitigation strategies across various scenarios
- Performance measurement systems with accountability structures

SUPPORTING RESEARCH AND EVIDENCE:
Evidence-Based Findings:
- Quantitative research results from industry surveys and studies
- Qualitative insights from expert interviews and focus groups
- Benchmarking data comparing industry standards and best practices
- Longitudinal studies tracking implementation success rates

Case Study Analysis:
- Real-world implementation examples across multiple industries
- Success stories with detailed outcome measurements
- Failure analysis with lessons learned and prevention strategies
- Comparative analysis of different approaches and methodologies

Technical Documentation:
- Detailed procedural guidelines for implementation
- Quality assurance checklists and validation procedures
- Compliance requirements and regulatory considerations
- Integration protocols for existing systems and processes

PRACTICAL APPLICATIONS:
The document provides actionable frameworks for professional decision-making, including step-by-step implementation guides, cost-benefit analysis templates, and performance monitoring systems. Content is structured to support both strategic planning initiatives and operational excellence programs.

Additional supporting materials include reference guides, template documents, appendices with detailed technical specifications, and cross-references to relevant industry standards and regulatory requirements.`
